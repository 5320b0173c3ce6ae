package postgres

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id                 TEXT PRIMARY KEY,
	email              TEXT NOT NULL,
	name               TEXT NOT NULL,
	role               TEXT NOT NULL,
	password_hash      TEXT NOT NULL,
	reset_token        TEXT,
	reset_token_expire TIMESTAMPTZ,
	created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT users_email_key UNIQUE (email)
);

CREATE INDEX IF NOT EXISTS users_reset_token_idx ON users (reset_token) WHERE reset_token IS NOT NULL;

CREATE TABLE IF NOT EXISTS properties (
	id              TEXT PRIMARY KEY,
	owner_id        TEXT NOT NULL REFERENCES users (id),
	title           TEXT NOT NULL,
	description     TEXT NOT NULL DEFAULT '',
	location        TEXT NOT NULL DEFAULT '',
	price_per_night BIGINT NOT NULL DEFAULT 0,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS properties_owner_id_idx ON properties (owner_id);

CREATE TABLE IF NOT EXISTS bookings (
	id          TEXT PRIMARY KEY,
	property_id TEXT NOT NULL REFERENCES properties (id),
	renter_id   TEXT NOT NULL REFERENCES users (id),
	status      TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS bookings_renter_id_idx ON bookings (renter_id, created_at DESC);
CREATE INDEX IF NOT EXISTS bookings_property_id_idx ON bookings (property_id, created_at DESC);

CREATE UNIQUE INDEX IF NOT EXISTS bookings_one_active_per_renter
	ON bookings (renter_id, property_id)
	WHERE status IN ('pending', 'confirmed');

CREATE TABLE IF NOT EXISTS notifications (
	id          TEXT PRIMARY KEY,
	receiver_id TEXT NOT NULL REFERENCES users (id),
	property_id TEXT NOT NULL REFERENCES properties (id),
	message     TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS notifications_receiver_id_idx ON notifications (receiver_id, created_at DESC);
`
