package cmd

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/nattawut/office-management/internal/auth"
	customerDatamodel "github.com/nattawut/office-management/internal/core/datamodel/customer"
	employeeDatamodel "github.com/nattawut/office-management/internal/core/datamodel/employee"
	userDatamodel "github.com/nattawut/office-management/internal/core/datamodel/user"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

type defaultUser struct {
	Username string
	Password string
	Email    string
	Role     auth.Role
	FullName string
}

var defaultUsers = []defaultUser{
	{"admin", "admin123", "admin@company.com", auth.RoleAdmin, "System Administrator"},
	{"sales01", "sales123", "sales@company.com", auth.RoleSales, "Sales Person"},
	{"hr01", "hr123", "hr@company.com", auth.RoleHR, "HR Manager"},
}

// bootstrapDefaultUsers seeds the initial accounts on first boot. The check
// keys off the admin username so reseeding after manual edits stays a no-op.
func bootstrapDefaultUsers(db *gorm.DB, hasher *auth.PasswordHasher, logger *slog.Logger) error {
	var existing userDatamodel.User
	err := db.Where("username = ?", "admin").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	for _, u := range defaultUsers {
		hash, err := hasher.Hash(u.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", u.Username, err)
		}

		record := &userDatamodel.User{
			Username:     u.Username,
			Email:        u.Email,
			PasswordHash: hash,
			Role:         string(u.Role),
			FullName:     u.FullName,
		}
		if err := db.Create(record).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.Username, err)
		}
		logger.Info("seeded default user", "username", u.Username, "role", u.Role)
	}

	return nil
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		gdb, err := initGorm(db)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			for _, table := range []string{"employees", "customers", "users"} {
				if err := gdb.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		hasher := auth.NewPasswordHasher(cfg.Security.BCryptCost)
		if err := bootstrapDefaultUsers(gdb, hasher, slog.Default()); err != nil {
			log.Fatalf("failed to seed default users: %v", err)
		}
		fmt.Println("Default users seeded")

		var admin userDatamodel.User
		if err := gdb.Where("username = ?", "admin").First(&admin).Error; err != nil {
			log.Fatalf("failed to look up admin user: %v", err)
		}

		seedSampleCustomers(gdb, admin.ID)
		seedSampleEmployees(gdb, admin.ID)

		fmt.Println("Sample data seeded successfully")
	},
}

func seedSampleCustomers(db *gorm.DB, adminID int64) {
	var count int64
	db.Model(&customerDatamodel.Customer{}).Count(&count)
	if count > 0 {
		return
	}

	str := func(s string) *string { return &s }

	customers := []customerDatamodel.Customer{
		{
			CustomerName:  "Acme Corporation",
			CompanyName:   str("Acme Corp"),
			Email:         str("contact@acme.example"),
			Phone:         str("+1-555-0100"),
			ContactPerson: str("Jane Roe"),
			Status:        "active",
			CreatedBy:     &adminID,
		},
		{
			CustomerName: "Globex Industries",
			CompanyName:  str("Globex"),
			Email:        str("sales@globex.example"),
			Status:       "active",
			CreatedBy:    &adminID,
		},
	}

	for i := range customers {
		if err := db.Create(&customers[i]).Error; err != nil {
			log.Fatalf("failed to seed customer %s: %v", customers[i].CustomerName, err)
		}
		fmt.Printf("Seeded customer: %s\n", customers[i].CustomerName)
	}
}

func seedSampleEmployees(db *gorm.DB, adminID int64) {
	var count int64
	db.Model(&employeeDatamodel.Employee{}).Count(&count)
	if count > 0 {
		return
	}

	str := func(s string) *string { return &s }
	salary := func(v string) decimal.NullDecimal {
		d, _ := decimal.NewFromString(v)
		return decimal.NullDecimal{Decimal: d, Valid: true}
	}
	hired := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	employees := []employeeDatamodel.Employee{
		{
			EmployeeID: "EMP001",
			FirstName:  "Somchai",
			LastName:   "Jaidee",
			Email:      str("somchai@company.com"),
			Position:   str("Software Engineer"),
			Department: str("Engineering"),
			Salary:     salary("55000.00"),
			HireDate:   &hired,
			Status:     "active",
			CreatedBy:  &adminID,
		},
		{
			EmployeeID: "EMP002",
			FirstName:  "Malee",
			LastName:   "Suksai",
			Email:      str("malee@company.com"),
			Position:   str("Accountant"),
			Department: str("Finance"),
			Salary:     salary("48000.00"),
			Status:     "active",
			CreatedBy:  &adminID,
		},
	}

	for i := range employees {
		if err := db.Create(&employees[i]).Error; err != nil {
			log.Fatalf("failed to seed employee %s: %v", employees[i].EmployeeID, err)
		}
		fmt.Printf("Seeded employee: %s\n", employees[i].EmployeeID)
	}
}
