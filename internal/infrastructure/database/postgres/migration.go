// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"
	"time"

	"github.com/gokhanazp/riversideburger-sub000/internal/domain/loyalty"
	"github.com/gokhanazp/riversideburger-sub000/internal/domain/menu"
	"github.com/gokhanazp/riversideburger-sub000/internal/domain/order"
	"github.com/gokhanazp/riversideburger-sub000/internal/domain/pricing"
	"github.com/gokhanazp/riversideburger-sub000/internal/domain/store"
	"github.com/gokhanazp/riversideburger-sub000/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Models in dependency order
	models := []interface{}{
		// User domain
		&user.User{},

		// Menu catalog
		&menu.Category{},
		&menu.Item{},
		&menu.OptionCategory{},
		&menu.Option{},

		// Loyalty ledger
		&loyalty.Account{},
		&loyalty.Transaction{},

		// Store availability
		&store.Settings{},
		&store.DaySchedule{},

		// Currency rates
		&pricing.CurrencyRate{},

		// Orders
		&order.Order{},
		&order.OrderItem{},
		&order.OrderItemOption{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		// User indexes
		"CREATE INDEX IF NOT EXISTS idx_users_email_active ON users(email, is_active)",

		// Menu indexes
		"CREATE INDEX IF NOT EXISTS idx_menu_items_category_active ON menu_items(category_id, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_menu_categories_sort_order ON menu_categories(sort_order)",
		"CREATE INDEX IF NOT EXISTS idx_options_category_active ON options(option_category_id, is_active)",

		// Loyalty indexes
		"CREATE INDEX IF NOT EXISTS idx_loyalty_transactions_user_created ON loyalty_transactions(user_id, created_at DESC)",

		// Order indexes
		"CREATE INDEX IF NOT EXISTS idx_orders_user_status ON orders(user_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_item_options_item ON order_item_options(order_item_id)",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
			failCount++
		} else {
			successCount++
		}
	}

	log.Printf("✅ Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedRequiredData inserts the rows the application cannot run without:
// the single store settings row and all seven weekday schedules. Runs in
// every environment.
func (m *Migration) SeedRequiredData() error {
	log.Println("🌱 Seeding required data...")

	if err := m.seedStoreSettings(); err != nil {
		return fmt.Errorf("failed to seed store settings: %w", err)
	}

	if err := m.seedWeeklySchedule(); err != nil {
		return fmt.Errorf("failed to seed weekly schedule: %w", err)
	}

	log.Println("✅ Required data seeded successfully")
	return nil
}

// SeedInitialData inserts development data into the database
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding development data...")

	if err := m.seedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := m.seedTestUser(); err != nil {
		return fmt.Errorf("failed to seed test user: %w", err)
	}

	if err := m.seedMenu(); err != nil {
		return fmt.Errorf("failed to seed menu: %w", err)
	}

	log.Println("✅ Development data seeded successfully")
	return nil
}

// seedStoreSettings creates the singleton settings row
func (m *Migration) seedStoreSettings() error {
	var count int64
	m.db.Model(&store.Settings{}).Count(&count)
	if count > 0 {
		log.Println("⏭️ Store settings already exist")
		return nil
	}

	settings := store.Settings{
		IsOpen:           true,
		AutoCloseEnabled: true,
	}
	if err := m.db.Create(&settings).Error; err != nil {
		return err
	}

	log.Println("✅ Created store settings")
	return nil
}

// seedWeeklySchedule creates the seven weekday rows, 09:00 to 22:00
func (m *Migration) seedWeeklySchedule() error {
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		var existing store.DaySchedule
		result := m.db.Where("weekday = ?", weekday).First(&existing)
		if result.Error == nil {
			continue
		}

		day := store.DaySchedule{
			Weekday:   weekday,
			Enabled:   true,
			OpenTime:  "09:00",
			CloseTime: "22:00",
		}
		if err := m.db.Create(&day).Error; err != nil {
			return err
		}
		log.Printf("✅ Created schedule for %s", weekday)
	}

	return nil
}

func (m *Migration) seedAdminUser() error {
	log.Println("👤 Seeding admin user...")

	var existing user.User
	result := m.db.Where("email = ?", "admin@riversideburger.com").First(&existing)
	if result.Error == nil {
		log.Printf("⏭️ Admin user already exists with ID: %d", existing.ID)
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Admin1234!"), 10)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	adminUser := user.User{
		Email:     "admin@riversideburger.com",
		Password:  string(hashedPassword),
		FirstName: "Admin",
		LastName:  "User",
		IsActive:  true,
		IsAdmin:   true,
	}
	if err := m.db.Create(&adminUser).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Println("✅ Created admin user: admin@riversideburger.com")
	return nil
}

func (m *Migration) seedTestUser() error {
	log.Println("👤 Seeding test user...")

	var existing user.User
	result := m.db.Where("email = ?", "test1@example.com").First(&existing)
	if result.Error == nil {
		log.Println("⏭️ Test user already exists")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Test1234!"), 10)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	testUser := user.User{
		Email:     "test1@example.com",
		Password:  string(hashedPassword),
		FirstName: "Test",
		LastName:  "User",
		Phone:     "+905551112233",
		Address:   "Kordon Boyu No. 12, Karşıyaka, İzmir",
		IsActive:  true,
		IsAdmin:   false,
	}
	if err := m.db.Create(&testUser).Error; err != nil {
		return err
	}

	log.Println("✅ Created test user: test1@example.com")
	return nil
}

// seedMenu creates a starter menu with customization options
func (m *Migration) seedMenu() error {
	log.Println("🍔 Seeding menu...")

	var itemCount int64
	m.db.Model(&menu.Item{}).Count(&itemCount)
	if itemCount > 0 {
		log.Println("⏭️ Menu items already exist")
		return nil
	}

	burgers := menu.Category{Name: "Burgerler", NameEN: "Burgers", SortOrder: 1, IsActive: true}
	sides := menu.Category{Name: "Yan Ürünler", NameEN: "Sides", SortOrder: 2, IsActive: true}
	drinks := menu.Category{Name: "İçecekler", NameEN: "Drinks", SortOrder: 3, IsActive: true}
	for _, category := range []*menu.Category{&burgers, &sides, &drinks} {
		if err := m.db.Create(category).Error; err != nil {
			return err
		}
	}

	extras := menu.OptionCategory{
		Name:          "Ekstra Malzemeler",
		NameEN:        "Extra Ingredients",
		MaxSelections: 2,
	}
	if err := m.db.Create(&extras).Error; err != nil {
		return err
	}

	extraOptions := []menu.Option{
		{OptionCategoryID: extras.ID, Name: "Cheddar", NameEN: "Cheddar", Price: 1500, IsActive: true},
		{OptionCategoryID: extras.ID, Name: "Karamelize Soğan", NameEN: "Caramelized Onion", Price: 1000, IsActive: true},
		{OptionCategoryID: extras.ID, Name: "Bacon", NameEN: "Bacon", Price: 2000, IsActive: true},
	}
	for i := range extraOptions {
		if err := m.db.Create(&extraOptions[i]).Error; err != nil {
			return err
		}
	}

	items := []menu.Item{
		{
			CategoryID:  burgers.ID,
			Name:        "Klasik Burger",
			NameEN:      "Classic Burger",
			Description: "Dana köfte, cheddar, turşu, özel sos",
			Price:       18500,
			Ingredients: "Köfte, Cheddar, Turşu, Soğan, Marul, Özel Sos",
			IsActive:    true,
		},
		{
			CategoryID:  burgers.ID,
			Name:        "Riverside Special",
			NameEN:      "Riverside Special",
			Description: "Çift köfte, karamelize soğan, füme sos",
			Price:       24500,
			Ingredients: "Çift Köfte, Karamelize Soğan, Füme Sos, Marul",
			IsActive:    true,
		},
		{
			CategoryID:  sides.ID,
			Name:        "Çıtır Patates",
			NameEN:      "Crispy Fries",
			Description: "",
			Price:       6500,
			IsActive:    true,
		},
		{
			CategoryID: drinks.ID,
			Name:       "Ev Yapımı Limonata",
			NameEN:     "Homemade Lemonade",
			Price:      4500,
			IsActive:   true,
		},
	}
	for i := range items {
		if err := m.db.Create(&items[i]).Error; err != nil {
			return err
		}
	}

	// The burgers take the extras category
	for i := 0; i < 2; i++ {
		if err := m.db.Model(&items[i]).Association("OptionCategories").Append(&extras); err != nil {
			return err
		}
	}

	log.Printf("✅ Created %d menu items", len(items))
	return nil
}

// GetTableInfo logs record counts for every table
func (m *Migration) GetTableInfo() error {
	var tables []string

	if err := m.db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename").Scan(&tables).Error; err != nil {
		return err
	}

	log.Println("📊 Database Tables Information:")
	log.Println("================================")

	totalRecords := int64(0)
	for _, table := range tables {
		var count int64
		m.db.Table(table).Count(&count)
		totalRecords += count

		status := "✅"
		if count == 0 {
			status = "📭"
		}

		log.Printf("%s %-25s | %d records", status, table, count)
	}

	log.Println("================================")
	log.Printf("📈 Total records across all tables: %d", totalRecords)
	log.Printf("🗂️ Total tables: %d", len(tables))

	return nil
}
