package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// ItemsPath is the collection path served by FakeCatalog
const ItemsPath = "/api/v2/items"

// FakeCatalog is an httptest server that speaks the listing and point-lookup
// protocol. Items have ids 1..N and names "mon<id>".
type FakeCatalog struct {
	Server *httptest.Server

	mu            sync.Mutex
	count         int
	listingStatus int
	missing       map[string]bool
	requests      []string
}

// NewFakeCatalog starts a fake catalog with count items; it is closed when the test ends
func NewFakeCatalog(t *testing.T, count int) *FakeCatalog {
	t.Helper()
	f := &FakeCatalog{
		count:   count,
		missing: make(map[string]bool),
	}
	mux := http.NewServeMux()
	mux.HandleFunc(ItemsPath, f.handleListing)
	mux.HandleFunc(ItemsPath+"/", f.handleItem)
	mux.HandleFunc("/img/", f.handleImage)
	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)
	return f
}

// BaseURL is the collection resource URL
func (f *FakeCatalog) BaseURL() string {
	return f.Server.URL + ItemsPath
}

// ListingURL builds a listing URL on this server
func (f *FakeCatalog) ListingURL(offset, limit int) string {
	return fmt.Sprintf("%s?limit=%d&offset=%d", f.BaseURL(), limit, offset)
}

// SetListingStatus makes every listing request fail with status; 0 restores success
func (f *FakeCatalog) SetListingStatus(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listingStatus = status
}

// SetMissing makes point fetches for the given names or ids return 404
func (f *FakeCatalog) SetMissing(keys ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		f.missing[k] = true
	}
}

// Requests returns the request URIs seen so far
func (f *FakeCatalog) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.requests))
	copy(out, f.requests)
	return out
}

func (f *FakeCatalog) record(r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r.URL.RequestURI())
	f.mu.Unlock()
}

func (f *FakeCatalog) handleListing(w http.ResponseWriter, r *http.Request) {
	f.record(r)
	f.mu.Lock()
	status := f.listingStatus
	f.mu.Unlock()
	if status != 0 {
		http.Error(w, "listing unavailable", status)
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	type ref struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	payload := struct {
		Count    int     `json:"count"`
		Next     *string `json:"next"`
		Previous *string `json:"previous"`
		Results  []ref   `json:"results"`
	}{Count: f.count, Results: []ref{}}

	for id := offset + 1; id <= offset+limit && id <= f.count; id++ {
		payload.Results = append(payload.Results, ref{
			Name: Name(id),
			URL:  fmt.Sprintf("%s/%d/", f.BaseURL(), id),
		})
	}
	if offset+limit < f.count {
		next := f.ListingURL(offset+limit, limit)
		payload.Next = &next
	}
	if offset > 0 {
		prevOffset := offset - limit
		if prevOffset < 0 {
			prevOffset = 0
		}
		prev := f.ListingURL(prevOffset, limit)
		payload.Previous = &prev
	}

	writeJSON(w, payload)
}

func (f *FakeCatalog) handleItem(w http.ResponseWriter, r *http.Request) {
	f.record(r)
	key := strings.Trim(strings.TrimPrefix(r.URL.Path, ItemsPath+"/"), "/")

	id, err := strconv.Atoi(key)
	if err != nil {
		id, err = strconv.Atoi(strings.TrimPrefix(key, "mon"))
		if err != nil || Name(id) != key {
			http.NotFound(w, r)
			return
		}
	}
	f.mu.Lock()
	missing := f.missing[key] || f.missing[Name(id)] || f.missing[strconv.Itoa(id)]
	f.mu.Unlock()
	if id < 1 || id > f.count || missing {
		http.NotFound(w, r)
		return
	}

	writeJSON(w, f.itemPayload(id))
}

func (f *FakeCatalog) handleImage(w http.ResponseWriter, r *http.Request) {
	f.record(r)
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(TinyPNG())
}

func (f *FakeCatalog) itemPayload(id int) map[string]any {
	var artwork any
	if id%2 == 0 {
		artwork = fmt.Sprintf("%s/img/art/%d.png", f.Server.URL, id)
	}
	typeList := []map[string]any{}
	for slot, name := range Categories(id) {
		typeList = append(typeList, map[string]any{
			"slot": slot + 1,
			"type": map[string]any{"name": name, "url": "https://example.test/type/" + name},
		})
	}
	return map[string]any{
		"id":     id,
		"name":   Name(id),
		"height": id * 7,
		"weight": id * 65,
		"types":  typeList,
		"sprites": map[string]any{
			"front_default": fmt.Sprintf("%s/img/%d.png", f.Server.URL, id),
			"other": map[string]any{
				"official-artwork": map[string]any{"front_default": artwork},
			},
		},
	}
}

// Name is the fake item name for id
func Name(id int) string {
	return fmt.Sprintf("mon%d", id)
}

// Categories returns the fake category names for id. Every fifth item
// carries a category with no color mapping.
func Categories(id int) []string {
	switch {
	case id%5 == 0:
		return []string{"shadow"}
	case id%3 == 0:
		return []string{"fire", "flying"}
	case id%2 == 0:
		return []string{"water"}
	default:
		return []string{"grass", "poison"}
	}
}

// TinyPNG returns a 4x4 PNG with a colored diagonal
func TinyPNG() []byte {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < 4; i++ {
		img.Set(i, i, color.NRGBA{R: 238, G: 129, B: 48, A: 255})
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
