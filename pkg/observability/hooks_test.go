package observability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()

	assert.IsType(t, NoopPipelineHooks{}, Pipeline())
	assert.IsType(t, NoopCacheHooks{}, Cache())
	assert.IsType(t, NoopStoreHooks{}, Store())
	assert.IsType(t, NoopHTTPHooks{}, HTTP())

	Pipeline().OnGenerate(ctx, GenerateEvent{ProjectType: "house", RoomCount: 4})
	Pipeline().OnRender(ctx, RenderEvent{Formats: []string{"svg"}})
	Cache().OnCache(ctx, CacheEvent{Kind: "plan", Op: CacheMiss})
	Store().OnStore(ctx, StoreEvent{Backend: "sqlite", Op: "save", Err: errors.New("locked")})
	HTTP().OnRequest(ctx, RequestEvent{Method: "POST", Route: "/api/v1/plans", Status: 201})
	HTTP().OnError(ctx, RequestEvent{Method: "GET", Route: "/api/v1/plans/{id}"})
}

func TestInstallKeepsUnsetReceivers(t *testing.T) {
	Reset()
	defer Reset()

	rec := &Recorder{}
	Install(Hooks{Store: rec})
	assert.Same(t, rec, Store())
	assert.IsType(t, NoopPipelineHooks{}, Pipeline(), "nil receivers are left alone")

	other := &Recorder{}
	Install(Hooks{Pipeline: other})
	assert.Same(t, other, Pipeline())
	assert.Same(t, rec, Store(), "a later Install keeps earlier receivers")

	Reset()
	assert.IsType(t, NoopStoreHooks{}, Store())
}

func TestRecorder(t *testing.T) {
	Reset()
	defer Reset()

	rec := &Recorder{}
	Install(rec.Hooks())
	ctx := context.Background()

	Pipeline().OnGenerate(ctx, GenerateEvent{ProjectType: "apartment", Rooms: 3, Duration: time.Millisecond})
	Cache().OnCache(ctx, CacheEvent{Kind: "artifact", Op: CacheSet, Bytes: 512})
	HTTP().OnError(ctx, RequestEvent{Method: "GET", Status: 500})

	gens := rec.Generates()
	require.Len(t, gens, 1)
	assert.Equal(t, "apartment", gens[0].ProjectType)
	assert.Equal(t, []CacheEvent{{Kind: "artifact", Op: CacheSet, Bytes: 512}}, rec.CacheEvents())
	assert.Len(t, rec.Errors(), 1)
	assert.Empty(t, rec.Renders())
	assert.Empty(t, rec.Requests())

	gens[0].Rooms = 99
	assert.Equal(t, 3, rec.Generates()[0].Rooms, "accessors return copies")
}

func TestInstallConcurrent(t *testing.T) {
	Reset()
	defer Reset()

	rec := &Recorder{}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Install(Hooks{Cache: rec})
		}()
		go func() {
			defer wg.Done()
			Cache().OnCache(context.Background(), CacheEvent{Kind: "plan", Op: CacheHit})
		}()
	}
	wg.Wait()
	assert.Same(t, rec, Cache())
}
