package library

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/m-mizutani/goerr/v2"
	bolt "go.etcd.io/bbolt"
)

const (
	bucketForms = "forms"
	bucketMeta  = "form_meta"
)

var initDB = map[string]func(*bolt.Tx) error{
	"initialize forms table": func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketForms))
		return err
	},
	"initialize form metadata table": func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketMeta))
		return err
	},
}

// Bolt is a Store backed by a bbolt file. Bodies and metadata live in
// separate buckets keyed by form id.
type Bolt struct {
	db  *bolt.DB
	now func() time.Time
}

var _ Store = (*Bolt)(nil)

// OpenBolt opens (creating if needed) the database at path.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open library database", goerr.V("path", path))
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return goerr.Wrap(err, "failed to initialize library", goerr.V("step", name))
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Bolt{db: db, now: time.Now}, nil
}

// List returns every entry sorted by id.
func (b *Bolt) List(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []Entry
	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketMeta)).ForEach(func(k, v []byte) error {
			var entry Entry
			if err := json.Unmarshal(v, &entry); err != nil {
				return goerr.Wrap(err, "failed to decode form metadata", goerr.V("id", string(k)))
			}
			out = append(out, entry)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sortEntries(out)
	return out, nil
}

// Get returns the stored schema.
func (b *Bolt) Get(ctx context.Context, id string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var raw []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketForms)).Get([]byte(id))
		if v == nil {
			return goerr.Wrap(ErrNotFound, "form not in library", goerr.V("id", id))
		}
		// Values are only valid for the life of the transaction.
		raw = append([]byte(nil), v...)
		return nil
	})
	return raw, err
}

// Put inserts or replaces a form.
func (b *Bolt) Put(ctx context.Context, entry Entry, raw []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	prepared, err := prepare(entry, raw, b.now())
	if err != nil {
		return err
	}
	meta, err := json.Marshal(prepared)
	if err != nil {
		return goerr.Wrap(err, "failed to encode form metadata", goerr.V("id", prepared.ID))
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		key := []byte(prepared.ID)
		if err := tx.Bucket([]byte(bucketForms)).Put(key, raw); err != nil {
			return goerr.Wrap(err, "failed to store form", goerr.V("id", prepared.ID))
		}
		if err := tx.Bucket([]byte(bucketMeta)).Put(key, meta); err != nil {
			return goerr.Wrap(err, "failed to store form metadata", goerr.V("id", prepared.ID))
		}
		return nil
	})
}

// Delete removes a form. Deleting an unknown id reports ErrNotFound.
func (b *Bolt) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		key := []byte(id)
		forms := tx.Bucket([]byte(bucketForms))
		if forms.Get(key) == nil {
			return goerr.Wrap(ErrNotFound, "form not in library", goerr.V("id", id))
		}
		if err := forms.Delete(key); err != nil {
			return err
		}
		return tx.Bucket([]byte(bucketMeta)).Delete(key)
	})
}

// Close releases the database file.
func (b *Bolt) Close() error {
	return b.db.Close()
}
