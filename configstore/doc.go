// Package configstore persists named connection profiles: which connector to
// use and the raw configuration to feed it. Profiles let operators switch
// clusters without redeploying; the registry revalidates the stored config
// every time a client is built from it.
//
// Two Store implementations exist. PGStore keeps profiles in PostgreSQL via
// pgx with goose-managed migrations:
//
//	pool, err := configstore.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	if err := configstore.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//	    return err
//	}
//	store := configstore.NewPGStore(pool)
//
// MemoryStore holds profiles in memory for tests and single-process setups.
//
// Stored configurations may contain secrets. The store persists them as-is;
// redaction for display is the admin layer's job, driven by the schema's
// Secret flag.
package configstore
