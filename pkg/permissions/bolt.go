package permissions

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/boltdb/bolt"
	"github.com/google/uuid"
)

var userBucket = []byte("users")

// BoltStore persists users as JSON documents in a bolt database, keyed by UUID.
type BoltStore struct {
	db *bolt.DB
}

var _ Store = (*BoltStore)(nil)

func OpenBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("could not open permission database %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(userBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create bucket: %w", err)
	}

	log.WithField("path", path).Debug("permissions.opened")
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) User(id uuid.UUID) (Record, error) {
	var user *User
	err := s.db.View(func(tx *bolt.Tx) (err error) {
		user, err = getUser(tx, id)
		return
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *BoltStore) SaveUser(r Record) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return putUser(tx, CopyUser(r))
	})
}

func (s *BoltStore) EnsureUser(id uuid.UUID, name string) (Record, error) {
	var user *User
	err := s.db.Update(func(tx *bolt.Tx) (err error) {
		user, err = getUser(tx, id)
		switch {
		case err == ErrUserNotFound:
			user = NewUser(id, name)
		case err != nil:
			return err
		case name == "" || user.Name == name:
			return nil
		default:
			user.Name = name
		}
		return putUser(tx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *BoltStore) UserByName(name string) (Record, error) {
	var user *User

	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(userBucket).Cursor()
		for id, data := c.First(); id != nil; id, data = c.Next() {
			var u User
			if err := json.Unmarshal(data, &u); err != nil {
				return fmt.Errorf("corrupted user %s: %w", id, err)
			}
			if strings.EqualFold(u.Name, name) {
				user = &u
				return nil
			}
		}
		return ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func getUser(tx *bolt.Tx, id uuid.UUID) (*User, error) {
	data := tx.Bucket(userBucket).Get([]byte(id.String()))
	if data == nil {
		return nil, ErrUserNotFound
	}

	user := &User{}
	if err := json.Unmarshal(data, user); err != nil {
		return nil, fmt.Errorf("corrupted user %s: %w", id, err)
	}
	return user, nil
}

func putUser(tx *bolt.Tx, user *User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return tx.Bucket(userBucket).Put([]byte(user.ID.String()), data)
}
