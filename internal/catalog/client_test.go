package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dexview/internal/catalog"
	"dexview/internal/config"
	"dexview/internal/errors"
	"dexview/pkg/testutils"
	"dexview/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newClient(f *testutils.FakeCatalog, opts ...catalog.Option) *catalog.Client {
	return catalog.NewClient(append([]catalog.Option{catalog.WithBaseURL(f.BaseURL())}, opts...)...)
}

func TestURLs(t *testing.T) {
	c := catalog.NewClient()
	assert.Equal(t, "https://pokeapi.co/api/v2/pokemon?limit=20&offset=0", c.DefaultListingURL())
	assert.Equal(t, "https://pokeapi.co/api/v2/pokemon/pikachu", c.LookupURL("pikachu"))
	assert.Equal(t, "https://pokeapi.co/api/v2/pokemon/mr%20mime", c.LookupURL("mr mime"))
	assert.Equal(t, "https://pokeapi.co/api/v2/pokemon?limit=20&offset=0", c.ListingURL(-5, 0))

	c = catalog.NewClient(catalog.WithBaseURL("https://example.test/items/"), catalog.WithPageSize(50))
	assert.Equal(t, "https://example.test/items?limit=50&offset=0", c.DefaultListingURL())
	assert.Equal(t, "https://example.test/items?limit=10&offset=40", c.ListingURL(40, 10))

	cfg := config.New()
	cfg.API.BaseURL = "https://example.test/things"
	cfg.API.PageSize = 8
	c = catalog.NewFromConfig(cfg)
	assert.Equal(t, "https://example.test/things?limit=8&offset=0", c.DefaultListingURL())
}

func TestFetchListing(t *testing.T) {
	f := testutils.NewFakeCatalog(t, 45)
	c := newClient(f)

	t.Run("first page", func(t *testing.T) {
		page, err := c.FetchListing(context.Background(), f.ListingURL(0, 20))
		require.NoError(t, err)
		assert.Equal(t, 45, page.Count)
		require.Len(t, page.References, 20)
		assert.Equal(t, "mon1", page.References[0].Name)
		assert.Equal(t, "mon20", page.References[19].Name)
		assert.Equal(t, f.ListingURL(20, 20), page.Next)
		assert.Empty(t, page.Previous)
	})

	t.Run("last page", func(t *testing.T) {
		page, err := c.FetchListing(context.Background(), f.ListingURL(40, 20))
		require.NoError(t, err)
		assert.Len(t, page.References, 5)
		assert.Empty(t, page.Next)
		assert.Equal(t, f.ListingURL(20, 20), page.Previous)
	})

	t.Run("non-success status", func(t *testing.T) {
		f.SetListingStatus(http.StatusInternalServerError)
		defer f.SetListingStatus(0)

		page, err := c.FetchListing(context.Background(), f.ListingURL(0, 20))
		require.Error(t, err)
		assert.Nil(t, page)
		assert.True(t, errors.IsListingFetchError(err))

		var fetchErr *errors.FetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, http.StatusInternalServerError, fetchErr.Status())
	})

	t.Run("transport failure", func(t *testing.T) {
		dead := httptest.NewServer(http.NotFoundHandler())
		deadURL := dead.URL + "/items?limit=20&offset=0"
		dead.Close()

		_, err := c.FetchListing(context.Background(), deadURL)
		require.Error(t, err)
		assert.True(t, errors.IsListingFetchError(err))
	})

	t.Run("undecodable body", func(t *testing.T) {
		bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		}))
		defer bad.Close()

		_, err := c.FetchListing(context.Background(), bad.URL)
		require.Error(t, err)
		assert.True(t, errors.IsListingFetchError(err))
	})
}

func TestFetchItem(t *testing.T) {
	f := testutils.NewFakeCatalog(t, 10)
	c := newClient(f)
	ctx := context.Background()

	item := c.FetchItem(ctx, f.BaseURL()+"/6/")
	require.NotNil(t, item)
	assert.Equal(t, 6, item.ID)
	assert.Equal(t, "mon6", item.Name)
	assert.Equal(t, []string{"fire", "flying"}, item.CategoryNames())
	assert.Equal(t, 42, item.Height)
	assert.Equal(t, 390, item.Weight)
	assert.True(t, strings.HasSuffix(item.Sprites.Default, "/img/6.png"))
	assert.True(t, strings.HasSuffix(item.Sprites.Artwork, "/img/art/6.png"))

	odd := c.FetchItem(ctx, f.BaseURL()+"/7/")
	require.NotNil(t, odd)
	assert.Empty(t, odd.Sprites.Artwork, "null artwork decodes as absent")

	assert.Nil(t, c.FetchItem(ctx, f.BaseURL()+"/99/"), "404 is absent, not an error")

	f.SetMissing("mon3")
	assert.Nil(t, c.FetchItem(ctx, f.BaseURL()+"/3/"))
}

func TestFetchItemByQuery(t *testing.T) {
	f := testutils.NewFakeCatalog(t, 10)
	c := newClient(f)
	ctx := context.Background()

	byName := c.FetchItemByQuery(ctx, "mon4")
	require.NotNil(t, byName)
	assert.Equal(t, 4, byName.ID)

	byID := c.FetchItemByQuery(ctx, "4")
	require.NotNil(t, byID)
	assert.Equal(t, "mon4", byID.Name)

	assert.Nil(t, c.FetchItemByQuery(ctx, "missingno"))
	assert.Nil(t, c.FetchItemByQuery(ctx, ""))

	assert.Contains(t, f.Requests(), testutils.ItemsPath+"/missingno")
}

func TestFetchItemsKeepsOrderAndAbsences(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"), goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"), goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"))

	f := testutils.NewFakeCatalog(t, 20)
	f.SetMissing("2", "mon5")

	for _, limit := range []int{0, 3} {
		c := newClient(f, catalog.WithConcurrency(limit))
		page, err := c.FetchListing(context.Background(), f.ListingURL(0, 6))
		require.NoError(t, err)

		results := c.FetchItems(context.Background(), page.References)
		require.Len(t, results, 6)
		var ids []int
		for _, item := range results {
			if item == nil {
				ids = append(ids, 0)
				continue
			}
			ids = append(ids, item.ID)
		}
		assert.Equal(t, []int{1, 0, 3, 4, 0, 6}, ids, "limit=%d", limit)
	}
}

func TestFetchItemsEmpty(t *testing.T) {
	c := catalog.NewClient()
	assert.Empty(t, c.FetchItems(context.Background(), []types.Reference{}))
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer slow.Close()
	defer close(release)

	c := catalog.NewClient(catalog.WithBaseURL(slow.URL), catalog.WithTimeout(50*time.Millisecond))
	start := time.Now()
	_, err := c.FetchListing(context.Background(), c.DefaultListingURL())
	require.Error(t, err)
	assert.True(t, errors.IsListingFetchError(err))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestFetchImage(t *testing.T) {
	f := testutils.NewFakeCatalog(t, 3)
	c := newClient(f)

	data, err := c.FetchImage(context.Background(), f.Server.URL+"/img/1.png")
	require.NoError(t, err)
	assert.Equal(t, testutils.TinyPNG(), data)

	_, err = c.FetchImage(context.Background(), "")
	require.Error(t, err)
}

func TestUserAgent(t *testing.T) {
	seen := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen <- r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{"count":0,"next":null,"previous":null,"results":[]}`))
	}))
	defer srv.Close()

	c := catalog.NewClient(catalog.WithBaseURL(srv.URL), catalog.WithUserAgent("dexview-test"))
	page, err := c.FetchListing(context.Background(), c.DefaultListingURL())
	require.NoError(t, err)
	assert.Empty(t, page.References)
	assert.Equal(t, "dexview-test", <-seen)
}
