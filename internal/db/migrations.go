package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`CREATE TABLE IF NOT EXISTS roles (
		id UUID PRIMARY KEY,
		name VARCHAR(50) NOT NULL UNIQUE
	);`,
	`INSERT INTO roles (id, name) VALUES
		('8b7b4a52-0f41-4c55-9a3e-3c1f9a4d2f01', 'Gerente'),
		('c2d1e6f4-5a8b-4e3c-8d7f-1b2a3c4d5e02', 'Asistente')
	ON CONFLICT (name) DO NOTHING;`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name VARCHAR(25) NOT NULL,
		lastname VARCHAR(50) NOT NULL,
		email VARCHAR(254) NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role_id UUID NOT NULL REFERENCES roles(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_full_name ON users (UPPER(name), UPPER(lastname));`,
	`CREATE TABLE IF NOT EXISTS transports (
		id UUID PRIMARY KEY,
		ruc VARCHAR(11) NOT NULL UNIQUE,
		name VARCHAR(50) NOT NULL,
		address VARCHAR(100) NOT NULL,
		telephone VARCHAR(12) NOT NULL,
		observation TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS drivers (
		id UUID PRIMARY KEY,
		dni VARCHAR(8) NOT NULL UNIQUE,
		dni_image_path TEXT NOT NULL,
		dni_date_start DATE NOT NULL,
		dni_date_end DATE NOT NULL,
		license VARCHAR(9) NOT NULL UNIQUE,
		license_image_path TEXT NOT NULL,
		license_date_start DATE NOT NULL,
		license_date_end DATE NOT NULL,
		name VARCHAR(50) NOT NULL,
		lastname VARCHAR(50) NOT NULL,
		cellphone_one VARCHAR(9) NOT NULL,
		cellphone_two VARCHAR(9),
		date_start DATE NOT NULL,
		date_end DATE,
		contract_image_path TEXT,
		observation TEXT,
		transport_id UUID NOT NULL REFERENCES transports(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_drivers_full_name ON drivers (UPPER(name), UPPER(lastname));`,
	`CREATE INDEX IF NOT EXISTS idx_drivers_transport_id ON drivers (transport_id);`,
	`CREATE TABLE IF NOT EXISTS policies (
		id UUID PRIMARY KEY,
		endorsement VARCHAR(15) NOT NULL,
		date_start DATE NOT NULL,
		date_end DATE NOT NULL,
		insurance_carrier VARCHAR(50) NOT NULL,
		insurance_company VARCHAR(50) NOT NULL,
		net_premium NUMERIC(9,2) NOT NULL,
		telephone VARCHAR(12) NOT NULL,
		image_path TEXT NOT NULL,
		observation TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS sctrs (
		id UUID PRIMARY KEY,
		pension_number VARCHAR(15) NOT NULL,
		health_number VARCHAR(15) NOT NULL,
		date_start DATE NOT NULL,
		date_end DATE NOT NULL,
		insurance_company VARCHAR(100) NOT NULL,
		image_path TEXT NOT NULL,
		observation TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS units (
		id UUID PRIMARY KEY,
		license_plate VARCHAR(7) NOT NULL UNIQUE,
		year INTEGER,
		brand VARCHAR(25) NOT NULL,
		model VARCHAR(25),
		engine_number VARCHAR(25) UNIQUE,
		chassis_number VARCHAR(25) UNIQUE,
		color VARCHAR(25) NOT NULL,
		number_cylinders INTEGER,
		number_axles INTEGER,
		number_tires INTEGER,
		number_seats INTEGER,
		dry_weight NUMERIC(5,3),
		gross_weight NUMERIC(5,3),
		useful_load NUMERIC(5,3),
		length NUMERIC(4,2),
		height NUMERIC(4,2),
		width NUMERIC(4,2),
		body_type VARCHAR(25) NOT NULL,
		policy_id UUID REFERENCES policies(id),
		technical_review_image_path TEXT,
		technical_review_date_start DATE,
		technical_review_date_end DATE,
		mtc_image_path TEXT,
		mtc_date_start DATE,
		mtc_date_end DATE,
		property_card_image_path TEXT,
		property_card_date_start DATE,
		property_card_date_end DATE,
		soat_image_path TEXT,
		soat_date_start DATE,
		soat_date_end DATE,
		observation TEXT,
		transport_id UUID NOT NULL REFERENCES transports(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_units_transport_id ON units (transport_id);`,
	`CREATE INDEX IF NOT EXISTS idx_units_policy_id ON units (policy_id);`,
	`CREATE TABLE IF NOT EXISTS clients (
		id UUID PRIMARY KEY,
		ruc VARCHAR(11) NOT NULL UNIQUE,
		name VARCHAR(50) NOT NULL,
		address VARCHAR(100) NOT NULL,
		observation TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		client_id UUID NOT NULL REFERENCES clients(id),
		observation TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_products_client_id ON products (client_id);`,
	`CREATE TABLE IF NOT EXISTS routes (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		address_start VARCHAR(300) NOT NULL,
		address_end VARCHAR(300) NOT NULL,
		client_start VARCHAR(100) NOT NULL,
		client_end VARCHAR(100) NOT NULL,
		value NUMERIC(7,2) NOT NULL,
		client_id UUID NOT NULL REFERENCES clients(id),
		observation TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_routes_client_id ON routes (client_id);`,
	`CREATE TABLE IF NOT EXISTS services (
		id UUID PRIMARY KEY,
		name VARCHAR(25) NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS expense_settlements (
		id UUID PRIMARY KEY,
		formatted_id VARCHAR(7) NOT NULL UNIQUE,
		toll NUMERIC(6,2) NOT NULL,
		viatic NUMERIC(6,2) NOT NULL,
		load NUMERIC(6,2) NOT NULL,
		unload NUMERIC(6,2) NOT NULL,
		garage NUMERIC(5,2) NOT NULL,
		washed NUMERIC(5,2) NOT NULL,
		tire NUMERIC(6,2) NOT NULL,
		mobility NUMERIC(5,2) NOT NULL,
		other NUMERIC(6,2) NOT NULL,
		other_detail TEXT,
		total NUMERIC(6,2) NOT NULL,
		deposits NUMERIC(6,2) NOT NULL,
		favors_the_company BOOLEAN NOT NULL,
		residue NUMERIC(7,2) NOT NULL,
		cancelled BOOLEAN NOT NULL,
		date_presentation DATE NOT NULL,
		observation TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS freights (
		id UUID PRIMARY KEY,
		formatted_id VARCHAR(7) NOT NULL UNIQUE,
		date_start DATE NOT NULL,
		date_end DATE,
		grt VARCHAR(1000),
		grr VARCHAR(1000),
		ton NUMERIC(4,2),
		pallet INTEGER,
		route_id UUID NOT NULL REFERENCES routes(id),
		truck_tractor_id UUID NOT NULL REFERENCES units(id),
		semi_trailer_id UUID NOT NULL REFERENCES units(id),
		driver_id UUID NOT NULL REFERENCES drivers(id),
		transport_id UUID NOT NULL REFERENCES transports(id),
		client_id UUID NOT NULL REFERENCES clients(id),
		service_id UUID NOT NULL REFERENCES services(id),
		expense_settlement_id UUID REFERENCES expense_settlements(id),
		observation TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_freights_date_start ON freights (date_start);`,
	`CREATE INDEX IF NOT EXISTS idx_freights_expense_settlement_id ON freights (expense_settlement_id);`,
	`CREATE INDEX IF NOT EXISTS idx_freights_transport_driver ON freights (transport_id, driver_id);`,
	`CREATE TABLE IF NOT EXISTS freight_products (
		id UUID PRIMARY KEY,
		product_id UUID NOT NULL REFERENCES products(id),
		freight_id UUID NOT NULL REFERENCES freights(id),
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		sku VARCHAR(40) NOT NULL,
		observation TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_freight_products_freight_id ON freight_products (freight_id);`,
	`CREATE TABLE IF NOT EXISTS sale_settlements (
		id UUID PRIMARY KEY,
		formatted_id VARCHAR(7) NOT NULL UNIQUE,
		date DATE NOT NULL,
		value_without_igv NUMERIC(8,2) NOT NULL,
		value_igv NUMERIC(8,2) NOT NULL,
		value_with_igv NUMERIC(8,2) NOT NULL,
		client_id UUID NOT NULL REFERENCES clients(id),
		invoice_number VARCHAR(13),
		invoice_date DATE,
		observation TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_sale_settlements_date ON sale_settlements (date);`,
	`CREATE TABLE IF NOT EXISTS sale_settlement_details (
		id UUID PRIMARY KEY,
		freight_id UUID NOT NULL REFERENCES freights(id),
		value_without_igv NUMERIC(7,2) NOT NULL,
		value_additional_without_igv NUMERIC(7,2) NOT NULL DEFAULT 0,
		value_additional_detail VARCHAR(100),
		observation VARCHAR(100),
		sale_settlement_id UUID NOT NULL REFERENCES sale_settlements(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_sale_settlement_details_freight_id ON sale_settlement_details (freight_id);`,
	`CREATE INDEX IF NOT EXISTS idx_sale_settlement_details_settlement_id ON sale_settlement_details (sale_settlement_id);`,
	`CREATE TABLE IF NOT EXISTS banks (
		id UUID PRIMARY KEY,
		name VARCHAR(25) NOT NULL UNIQUE,
		observation VARCHAR(100),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS output_types (
		id UUID PRIMARY KEY,
		name VARCHAR(25) NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS outputs (
		id UUID PRIMARY KEY,
		bank_id UUID NOT NULL REFERENCES banks(id),
		date DATE NOT NULL,
		value NUMERIC(7,2) NOT NULL,
		operation VARCHAR(25),
		output_type_id UUID NOT NULL REFERENCES output_types(id),
		freight_id UUID REFERENCES freights(id),
		user_id UUID REFERENCES users(id),
		observation VARCHAR(100),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_outputs_bank_date ON outputs (bank_id, date);`,
	`CREATE INDEX IF NOT EXISTS idx_outputs_freight_id ON outputs (freight_id);`,
	// formatted ids are drawn from sequences; the start value keeps existing rows' numbers free
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_class WHERE relkind = 'S' AND relname = 'freight_formatted_id_seq') THEN
			CREATE SEQUENCE freight_formatted_id_seq;
			PERFORM setval('freight_formatted_id_seq',
				COALESCE((SELECT MAX(SUBSTRING(formatted_id FROM 2)::int) FROM freights), 0) + 1, false);
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_class WHERE relkind = 'S' AND relname = 'expense_settlement_formatted_id_seq') THEN
			CREATE SEQUENCE expense_settlement_formatted_id_seq;
			PERFORM setval('expense_settlement_formatted_id_seq',
				COALESCE((SELECT MAX(SUBSTRING(formatted_id FROM 2)::int) FROM expense_settlements), 0) + 1, false);
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_class WHERE relkind = 'S' AND relname = 'sale_settlement_formatted_id_seq') THEN
			CREATE SEQUENCE sale_settlement_formatted_id_seq;
			PERFORM setval('sale_settlement_formatted_id_seq',
				COALESCE((SELECT MAX(SUBSTRING(formatted_id FROM 2)::int) FROM sale_settlements), 0) + 1, false);
		END IF;
	END
	$$;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
