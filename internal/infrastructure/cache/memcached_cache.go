package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"

	"github.com/bradfitz/gomemcache/memcache"
)

const keyPrefix = "user:"

// maxRelativeExp is the largest expiration memcached treats as relative seconds.
const maxRelativeExp = 30 * 24 * 60 * 60

// cachedUser is the JSON document stored in memcached. The password never leaves the service.
type cachedUser struct {
	ID               int64   `json:"id"`
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	IdentityDocument string  `json:"identityDocument"`
	Phone            string  `json:"phone"`
	BirthDate        *string `json:"birthDate,omitempty"`
	Email            string  `json:"email"`
	RoleID           int64   `json:"roleId"`
	RoleName         string  `json:"roleName"`
	RoleDescription  string  `json:"roleDescription"`
	RestaurantID     *int64  `json:"restaurantId,omitempty"`
}

// MemcachedCache implements users.UserCache using memcached.
type MemcachedCache struct {
	client *memcache.Client
	ttl    time.Duration
}

// NewMemcachedCache creates a MemcachedCache. addrs is a comma-separated list
// such as "localhost:11211" or "host1:11211,host2:11211".
func NewMemcachedCache(addrs string, timeout, ttl time.Duration) (*MemcachedCache, error) {
	servers := parseAddrs(addrs)
	if len(servers) == 0 {
		return nil, fmt.Errorf("at least one memcached address is required")
	}
	client := memcache.New(servers...)
	if timeout > 0 {
		client.Timeout = timeout
	}
	return &MemcachedCache{client: client, ttl: ttl}, nil
}

func parseAddrs(s string) []string {
	var out []string
	for _, a := range strings.Split(s, ",") {
		a = strings.TrimSpace(a)
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}

func key(userID int64) string {
	return keyPrefix + strconv.FormatInt(userID, 10)
}

// Get returns ok=false, nil on a cache miss.
func (c *MemcachedCache) Get(ctx context.Context, userID int64) (*users.User, bool, error) {
	if ctx.Err() != nil {
		return nil, false, ctx.Err()
	}
	item, err := c.client.Get(key(userID))
	if err != nil {
		if errors.Is(err, memcache.ErrCacheMiss) {
			return nil, false, nil
		}
		return nil, false, err
	}
	user, err := decodeUser(item.Value)
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func (c *MemcachedCache) Set(ctx context.Context, user *users.User) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	raw, err := encodeUser(user)
	if err != nil {
		return err
	}
	return c.client.Set(&memcache.Item{
		Key:        key(user.ID),
		Value:      raw,
		Expiration: expirationSeconds(c.ttl),
	})
}

func (c *MemcachedCache) Delete(ctx context.Context, userID int64) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	err := c.client.Delete(key(userID))
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		return err
	}
	return nil
}

// Ping checks if memcached is reachable.
func (c *MemcachedCache) Ping() error {
	return c.client.Ping()
}

// Close closes the memcached client connections.
func (c *MemcachedCache) Close() error {
	return c.client.Close()
}

func expirationSeconds(ttl time.Duration) int32 {
	exp := int32(ttl.Seconds())
	if exp <= 0 || exp > maxRelativeExp {
		exp = 300
	}
	return exp
}

func encodeUser(u *users.User) ([]byte, error) {
	doc := cachedUser{
		ID:               u.ID,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		IdentityDocument: u.IdentityDocument,
		Phone:            u.Phone,
		Email:            u.Email,
		RestaurantID:     u.RestaurantID,
	}
	if u.BirthDate != nil {
		bd := u.BirthDate.Format(time.DateOnly)
		doc.BirthDate = &bd
	}
	if u.Role != nil {
		doc.RoleID = u.Role.ID
		doc.RoleName = u.Role.Name
		doc.RoleDescription = u.Role.Description
	}
	return json.Marshal(doc)
}

func decodeUser(raw []byte) (*users.User, error) {
	var doc cachedUser
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode cached user: %w", err)
	}

	u := &users.User{
		ID:               doc.ID,
		FirstName:        doc.FirstName,
		LastName:         doc.LastName,
		IdentityDocument: doc.IdentityDocument,
		Phone:            doc.Phone,
		Email:            doc.Email,
		RestaurantID:     doc.RestaurantID,
	}
	if doc.BirthDate != nil {
		bd, err := time.Parse(time.DateOnly, *doc.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("failed to decode cached birth date: %w", err)
		}
		u.BirthDate = &bd
	}
	if doc.RoleName != "" {
		u.Role = &users.Role{ID: doc.RoleID, Name: doc.RoleName, Description: doc.RoleDescription}
	}
	return u, nil
}
