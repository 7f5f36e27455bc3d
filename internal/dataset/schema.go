package dataset

// Schema DDL for the dataset file. The runs table carries the scalar
// aggregates and parameters as columns so a run is self-describing
// without touching the bulk tables.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    scenario TEXT NOT NULL,
    created_at TEXT NOT NULL,
    software TEXT NOT NULL,
    version TEXT NOT NULL,
    width INTEGER NOT NULL,
    steps INTEGER NOT NULL,
    center_position INTEGER NOT NULL,
    initial_condition TEXT NOT NULL,
    mean_entropy REAL NOT NULL,
    std_entropy REAL NOT NULL,
    mean_complexity REAL NOT NULL,
    std_complexity REAL NOT NULL,
    final_density REAL NOT NULL
);`,

	`CREATE TABLE IF NOT EXISTS cells (
    run_id TEXT NOT NULL,
    time INTEGER NOT NULL,
    row BLOB NOT NULL,
    PRIMARY KEY (run_id, time),
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);`,

	`CREATE TABLE IF NOT EXISTS metrics (
    run_id TEXT NOT NULL,
    time INTEGER NOT NULL,
    entropy REAL NOT NULL,
    complexity REAL NOT NULL,
    PRIMARY KEY (run_id, time),
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);`,

	`CREATE TABLE IF NOT EXISTS attributes (
    run_id TEXT NOT NULL,
    name TEXT NOT NULL,
    value TEXT NOT NULL,
    PRIMARY KEY (run_id, name),
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);`,
}
