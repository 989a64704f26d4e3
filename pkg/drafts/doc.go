// Package drafts persists serialised domain objects, including ones that are
// still invalid drafts.
//
// A Store keeps opaque bytes by id. Backends:
//
//   - MemoryStore   – bounded LRU inside the process
//   - RedisStore    – one key per draft, optional TTL
//   - PostgresStore – drafts table, schema applied by MigratePostgres
//   - MongoStore    – one document per draft
//   - S3Store       – one object per draft
//
// Repository layers a Codec on top of a Store. Because encoding a hosting
// object reads every field, Save of an invalid non-draft fails with the
// wrapped validation failure and nothing is written, while a draft is stored
// as is and restored as a draft by Load.
//
//	repo := drafts.NewRepository[*person.Person](drafts.NewMemoryStore(0), drafts.JSONCodec[person.Person]{})
//	err := repo.Save(ctx, id, p)
//	if validator.IsValidationFailure(err) {
//	    // p is invalid and not a draft
//	}
package drafts
