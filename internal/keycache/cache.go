package keycache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/dcrodman/blowfish/pkg/blowfish"
)

// Cache holds scheduled ciphers by key so that repeated lookups of the same
// key skip the key schedule. Entries expire after the configured duration
// unless it is negative, in which case they live as long as the Cache.
type Cache struct {
	cacheInstance *gocache.Cache
}

func New(expiration, cleanupInterval time.Duration) *Cache {
	return &Cache{cacheInstance: gocache.New(expiration, cleanupInterval)}
}

// Get returns the cipher for key, scheduling and storing it on a miss.
//
// Every caller asking for the same key gets the same *blowfish.Cipher. It may
// be used for Encrypt and Decrypt from any goroutine, but must never be
// re-keyed with Schedule: that would change the key for every other holder,
// possibly in the middle of their transforms.
func (c *Cache) Get(key []byte) (*blowfish.Cipher, error) {
	if v, ok := c.cacheInstance.Get(string(key)); ok {
		return v.(*blowfish.Cipher), nil
	}

	cipher, err := blowfish.NewCipher(key)
	if err != nil {
		return nil, err
	}
	c.cacheInstance.SetDefault(string(key), cipher)
	return cipher, nil
}

// Len returns the number of cached ciphers, including expired ones that
// have not been purged yet.
func (c *Cache) Len() int {
	return c.cacheInstance.ItemCount()
}

// Flush drops every cached cipher.
func (c *Cache) Flush() {
	c.cacheInstance.Flush()
}
