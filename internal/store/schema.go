package store

// Column names match the trip_info and expenses sheet headers, so the tables
// can be exported to a spreadsheet as-is.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS trip_info (
    trip_id              TEXT NOT NULL,
    trip_name            TEXT NOT NULL,
    start_date           TEXT NOT NULL,
    end_date             TEXT NOT NULL,
    total_budget         TEXT NOT NULL,
    duration             TEXT,
    days_left            TEXT,
    total_spent          TEXT,
    remaining_budget     TEXT,
    daily_budget         TEXT,
    avg_daily_spent      TEXT,
    budget_status        TEXT
);

CREATE TABLE IF NOT EXISTS expenses (
    date                 TEXT PRIMARY KEY,
    amount               TEXT NOT NULL
);
`
