package main_test

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("OpenAPI document", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())
	})

	It("should be a valid OpenAPI 3 document", func() {
		Expect(doc.Validate(context.Background())).To(Succeed())
	})

	It("should document every API route", func() {
		for _, path := range []string{
			"/health",
			"/ping",
			"/auth/login",
			"/auth/me",
			"/users",
			"/users/{id}",
			"/customers",
			"/customers/{id}",
			"/employees",
			"/employees/{id}",
		} {
			Expect(doc.Paths.Find(path)).NotTo(BeNil(), "missing path %s", path)
		}
	})

	It("should require bearer auth on protected operations", func() {
		me := doc.Paths.Find("/auth/me")
		Expect(me).NotTo(BeNil())
		Expect(me.Get.Security).NotTo(BeNil())

		users := doc.Paths.Find("/users")
		Expect(users).NotTo(BeNil())
		Expect(users.Get.Security).NotTo(BeNil())
		Expect(users.Post.Security).NotTo(BeNil())
	})
})
