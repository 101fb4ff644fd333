package mongodb

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client is the process-wide document store gateway. The first caller
// establishes the underlying connection; every later call reuses it. The
// mutex gives the connect step single-flight semantics under concurrent
// first use, and Close resets the gateway so a later call reconnects.
type Client struct {
	uri    string
	dbName string

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

func NewClient(uri, dbName string) *Client {
	return &Client{uri: uri, dbName: dbName}
}

// Connect establishes the shared connection if needed and returns the
// database handle. Idempotent.
func (c *Client) Connect(ctx context.Context) (*mongo.Database, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connectLocked(ctx)
}

func (c *Client) connectLocked(ctx context.Context) (*mongo.Database, error) {
	if c.db != nil {
		return c.db, nil
	}
	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(c.uri))
	if err != nil {
		return nil, err
	}
	c.client = cli
	c.db = cli.Database(c.dbName)
	return c.db, nil
}

// Collection returns a handle for the named collection, connecting lazily.
func (c *Client) Collection(ctx context.Context, name string) (*mongo.Collection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	db, err := c.connectLocked(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

// Ping connects if needed and verifies the server is reachable. The driver
// itself connects lazily, so startup uses this for fail-fast.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.Connect(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	cli := c.client
	c.mu.Unlock()
	return cli.Ping(ctx, readpref.Primary())
}

// Close releases the connection. Safe to call when never connected;
// a later Connect or Collection call re-establishes the connection.
func (c *Client) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client == nil {
		return nil
	}
	err := c.client.Disconnect(ctx)
	c.client = nil
	c.db = nil
	return err
}
