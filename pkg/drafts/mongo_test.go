package drafts_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/draftkit/pkg/drafts"
)

func TestConnectMongo_ConnectTimeoutBoundsRetries(t *testing.T) {
	t.Parallel()

	start := time.Now()
	_, err := drafts.ConnectMongo(context.Background(), drafts.MongoConfig{
		ConnectionURL:  "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=60000",
		ConnectTimeout: 200 * time.Millisecond,
		MaxPoolSize:    1,
		RetryAttempts:  3,
		RetryInterval:  time.Minute,
	})

	assert.ErrorIs(t, err, drafts.ErrMongoNotReady)
	assert.Less(t, time.Since(start), 10*time.Second)
}
