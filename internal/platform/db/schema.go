package db

// The active-affiliation rule (one active row per employee) is a generated
// column with a UNIQUE key on MySQL and a partial unique index on SQLite.

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
	id            CHAR(24)     NOT NULL PRIMARY KEY,
	email         VARCHAR(255) NOT NULL,
	name          VARCHAR(255) NOT NULL DEFAULT '',
	company_name  VARCHAR(255) NOT NULL DEFAULT '',
	company_logo  TEXT         NOT NULL,
	date_of_birth VARCHAR(32)  NOT NULL DEFAULT '',
	profile_image TEXT         NOT NULL,
	role          VARCHAR(32)  NOT NULL DEFAULT 'employee',
	created_at    DATETIME(6)  NOT NULL,
	UNIQUE KEY uniq_users_email (email)
	)`,
	`CREATE TABLE IF NOT EXISTS packages (
	id             CHAR(24)      NOT NULL PRIMARY KEY,
	name           VARCHAR(64)   NOT NULL,
	employee_limit INT           NOT NULL,
	price          DECIMAL(10,2) NOT NULL,
	features_json  TEXT          NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS assets (
	id                 CHAR(24)     NOT NULL PRIMARY KEY,
	product_name       VARCHAR(255) NOT NULL,
	product_type       VARCHAR(16)  NOT NULL,
	product_image      TEXT         NOT NULL,
	product_quantity   INT          NOT NULL,
	available_quantity INT          NOT NULL,
	hr_email           VARCHAR(255) NOT NULL,
	company_name       VARCHAR(255) NOT NULL DEFAULT '',
	date_added         DATETIME(6)  NOT NULL,
	KEY idx_assets_hr_email (hr_email),
	CHECK (available_quantity >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS asset_requests (
	id              CHAR(24)     NOT NULL PRIMARY KEY,
	asset_id        CHAR(24)     NOT NULL,
	asset_name      VARCHAR(255) NOT NULL DEFAULT '',
	asset_type      VARCHAR(16)  NOT NULL DEFAULT '',
	asset_image     TEXT         NOT NULL,
	requester_email VARCHAR(255) NOT NULL,
	employee_name   VARCHAR(255) NOT NULL DEFAULT '',
	hr_email        VARCHAR(255) NOT NULL,
	company_name    VARCHAR(255) NOT NULL DEFAULT '',
	request_date    DATETIME(6)  NOT NULL,
	approval_date   DATETIME(6)  NULL,
	request_status  VARCHAR(16)  NOT NULL,
	note            TEXT         NOT NULL,
	processed_by    VARCHAR(255) NOT NULL DEFAULT '',
	KEY idx_requests_requester (requester_email),
	KEY idx_requests_hr (hr_email)
	)`,
	`CREATE TABLE IF NOT EXISTS assigned_assets (
	id              CHAR(24)     NOT NULL PRIMARY KEY,
	asset_id        CHAR(24)     NOT NULL,
	request_id      CHAR(24)     NOT NULL DEFAULT '',
	asset_name      VARCHAR(255) NOT NULL DEFAULT '',
	asset_type      VARCHAR(16)  NOT NULL DEFAULT '',
	asset_image     TEXT         NOT NULL,
	employee_email  VARCHAR(255) NOT NULL,
	employee_name   VARCHAR(255) NOT NULL DEFAULT '',
	hr_email        VARCHAR(255) NOT NULL,
	company_name    VARCHAR(255) NOT NULL DEFAULT '',
	assignment_date DATETIME(6)  NOT NULL,
	approval_date   DATETIME(6)  NOT NULL,
	return_date     DATETIME(6)  NULL,
	status          VARCHAR(16)  NOT NULL,
	KEY idx_assigned_employee (employee_email, status)
	)`,
	`CREATE TABLE IF NOT EXISTS affiliations (
	id               CHAR(24)     NOT NULL PRIMARY KEY,
	employee_email   VARCHAR(255) NOT NULL,
	employee_name    VARCHAR(255) NOT NULL DEFAULT '',
	employee_photo   TEXT         NOT NULL,
	hr_email         VARCHAR(255) NOT NULL,
	company_name     VARCHAR(255) NOT NULL DEFAULT '',
	company_logo     TEXT         NOT NULL,
	affiliation_date DATETIME(6)  NOT NULL,
	assets_count     INT          NOT NULL DEFAULT 0,
	status           VARCHAR(16)  NOT NULL,
	active_email     VARCHAR(255) GENERATED ALWAYS AS (CASE WHEN status = 'active' THEN employee_email END) STORED,
	UNIQUE KEY uniq_affiliations_active (active_email),
	KEY idx_affiliations_hr (hr_email)
	)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
	id            TEXT     NOT NULL PRIMARY KEY,
	email         TEXT     NOT NULL UNIQUE,
	name          TEXT     NOT NULL DEFAULT '',
	company_name  TEXT     NOT NULL DEFAULT '',
	company_logo  TEXT     NOT NULL DEFAULT '',
	date_of_birth TEXT     NOT NULL DEFAULT '',
	profile_image TEXT     NOT NULL DEFAULT '',
	role          TEXT     NOT NULL DEFAULT 'employee',
	created_at    DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS packages (
	id             TEXT    NOT NULL PRIMARY KEY,
	name           TEXT    NOT NULL,
	employee_limit INTEGER NOT NULL,
	price          REAL    NOT NULL,
	features_json  TEXT    NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS assets (
	id                 TEXT     NOT NULL PRIMARY KEY,
	product_name       TEXT     NOT NULL,
	product_type       TEXT     NOT NULL,
	product_image      TEXT     NOT NULL DEFAULT '',
	product_quantity   INTEGER  NOT NULL,
	available_quantity INTEGER  NOT NULL CHECK (available_quantity >= 0),
	hr_email           TEXT     NOT NULL,
	company_name       TEXT     NOT NULL DEFAULT '',
	date_added         DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_assets_hr_email ON assets(hr_email)`,
	`CREATE TABLE IF NOT EXISTS asset_requests (
	id              TEXT     NOT NULL PRIMARY KEY,
	asset_id        TEXT     NOT NULL,
	asset_name      TEXT     NOT NULL DEFAULT '',
	asset_type      TEXT     NOT NULL DEFAULT '',
	asset_image     TEXT     NOT NULL DEFAULT '',
	requester_email TEXT     NOT NULL,
	employee_name   TEXT     NOT NULL DEFAULT '',
	hr_email        TEXT     NOT NULL,
	company_name    TEXT     NOT NULL DEFAULT '',
	request_date    DATETIME NOT NULL,
	approval_date   DATETIME NULL,
	request_status  TEXT     NOT NULL,
	note            TEXT     NOT NULL DEFAULT '',
	processed_by    TEXT     NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_requests_requester ON asset_requests(requester_email)`,
	`CREATE INDEX IF NOT EXISTS idx_requests_hr ON asset_requests(hr_email)`,
	`CREATE TABLE IF NOT EXISTS assigned_assets (
	id              TEXT     NOT NULL PRIMARY KEY,
	asset_id        TEXT     NOT NULL,
	request_id      TEXT     NOT NULL DEFAULT '',
	asset_name      TEXT     NOT NULL DEFAULT '',
	asset_type      TEXT     NOT NULL DEFAULT '',
	asset_image     TEXT     NOT NULL DEFAULT '',
	employee_email  TEXT     NOT NULL,
	employee_name   TEXT     NOT NULL DEFAULT '',
	hr_email        TEXT     NOT NULL,
	company_name    TEXT     NOT NULL DEFAULT '',
	assignment_date DATETIME NOT NULL,
	approval_date   DATETIME NOT NULL,
	return_date     DATETIME NULL,
	status          TEXT     NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_assigned_employee ON assigned_assets(employee_email, status)`,
	`CREATE TABLE IF NOT EXISTS affiliations (
	id               TEXT     NOT NULL PRIMARY KEY,
	employee_email   TEXT     NOT NULL,
	employee_name    TEXT     NOT NULL DEFAULT '',
	employee_photo   TEXT     NOT NULL DEFAULT '',
	hr_email         TEXT     NOT NULL,
	company_name     TEXT     NOT NULL DEFAULT '',
	company_logo     TEXT     NOT NULL DEFAULT '',
	affiliation_date DATETIME NOT NULL,
	assets_count     INTEGER  NOT NULL DEFAULT 0,
	status           TEXT     NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uniq_affiliations_active ON affiliations(employee_email) WHERE status = 'active'`,
	`CREATE INDEX IF NOT EXISTS idx_affiliations_hr ON affiliations(hr_email)`,
}
