package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type table struct {
	name string
	ddl  string
}

// One statement per entry. Each runs in its own Exec, so the same
// DB_DSN cmd/web uses works without the multiStatements driver flag.
var tables = []table{
	{
		name: "vouchers",
		ddl: `CREATE TABLE IF NOT EXISTS vouchers (
		  id CHAR(36) NOT NULL,
		  serial_number VARCHAR(64) NOT NULL,
		  pin VARCHAR(64) NOT NULL,
		  type VARCHAR(32) NOT NULL,
		  status VARCHAR(16) NOT NULL DEFAULT 'available',
		  purchaser_name VARCHAR(255) NULL,
		  purchaser_phone VARCHAR(32) NULL,
		  paystack_reference VARCHAR(128) NULL,
		  purchased_at DATETIME(3) NULL,
		  receipt_url VARCHAR(512) NULL,
		  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		  PRIMARY KEY (id),
		  UNIQUE KEY ux_vouchers_serial (serial_number),
		  KEY ix_vouchers_type_status (type, status),
		  KEY ix_vouchers_phone (purchaser_phone),
		  KEY ix_vouchers_reference (paystack_reference)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		name: "purchases",
		ddl: `CREATE TABLE IF NOT EXISTS purchases (
		  id CHAR(36) NOT NULL,
		  reference VARCHAR(128) NOT NULL,
		  type VARCHAR(32) NOT NULL,
		  qty INT NOT NULL,
		  unit_pesewas INT NOT NULL,
		  amount_pesewas INT NOT NULL,
		  currency CHAR(3) NOT NULL DEFAULT 'GHS',
		  purchaser_name VARCHAR(255) NOT NULL,
		  purchaser_phone VARCHAR(32) NOT NULL,
		  status VARCHAR(16) NOT NULL DEFAULT 'initiated',
		  authorization_url VARCHAR(512) NULL,
		  error_message VARCHAR(255) NULL,
		  paid_at DATETIME(3) NULL,
		  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		  PRIMARY KEY (id),
		  UNIQUE KEY ux_purchases_reference (reference),
		  KEY ix_purchases_phone (purchaser_phone)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		name: "provider_events",
		ddl: `CREATE TABLE IF NOT EXISTS provider_events (
		  id CHAR(36) NOT NULL,
		  provider VARCHAR(64) NOT NULL,
		  event_id VARCHAR(128) NOT NULL,
		  event_type VARCHAR(64) NOT NULL,
		  payload_json JSON NOT NULL,
		  received_at DATETIME(3) NOT NULL,
		  processed_at DATETIME(3) NULL,
		  process_error VARCHAR(255) NULL,
		  PRIMARY KEY (id),
		  UNIQUE KEY ux_provider_events_provider_event (provider, event_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
	{
		name: "sms_sent_logs",
		ddl: `CREATE TABLE IF NOT EXISTS sms_sent_logs (
		  id BIGINT NOT NULL AUTO_INCREMENT,
		  phone_number VARCHAR(32) NOT NULL,
		  reference VARCHAR(128) NOT NULL,
		  message_type VARCHAR(32) NOT NULL,
		  status VARCHAR(16) NOT NULL,
		  provider_message_id VARCHAR(128) NULL,
		  error_message VARCHAR(255) NULL,
		  sent_at DATETIME(3) NULL,
		  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		  PRIMARY KEY (id),
		  KEY ix_sms_sent_logs_phone (phone_number),
		  KEY ix_sms_sent_logs_reference (reference)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	},
}

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get DB: %v", err)
	}

	for _, t := range tables {
		if _, err := sqlDB.Exec(t.ddl); err != nil {
			log.Fatalf("Failed to create %s table: %v", t.name, err)
		}
		log.Printf("✓ %s table created successfully", t.name)
	}
}
