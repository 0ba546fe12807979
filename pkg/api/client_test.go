package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestAPI(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "API Client Suite")
}

const narsetJSON = `{
	"name": "Narset, Enlightened Master",
	"manaCost": "{3}{U}{R}{W}",
	"cmc": 6,
	"colors": ["White", "Blue", "Red"],
	"type": "Legendary Creature — Human Monk",
	"rarity": "Mythic",
	"set": "KTK",
	"setName": "Khans of Tarkir",
	"text": "First strike, hexproof",
	"multiverseid": 386616
}`

// newTestServer serves a minimal slice of the MTG API.
func newTestServer() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/cards/386616", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"card":` + narsetJSON + `}`))
	})
	mux.HandleFunc("/cards/999", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	mux.HandleFunc("/cards/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/cards", func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Link", `<https://example.com/v1/cards?page=1>; rel="first"`)
		h.Set("Page-Size", "100")
		h.Set("Total-Count", "93643")
		h.Set("Ratelimit-Limit", "1000")
		h.Set("Ratelimit-Remaining", "999")

		switch {
		case r.URL.Query().Get("name") == `"Narset, Enlightened Master"`:
			h.Set("Count", "1")
			_, _ = w.Write([]byte(`{"cards":[` + narsetJSON + `]}`))
		case r.URL.Query().Get("page") == "9999999":
			h.Set("Count", "0")
			_, _ = w.Write([]byte(`{"cards":[]}`))
		case r.URL.Query().Get("name") != "":
			h.Set("Count", "0")
			_, _ = w.Write([]byte(`{"cards":[]}`))
		default:
			h.Set("Count", "2")
			_, _ = w.Write([]byte(`{"cards":[{"name":"Ancestor's Chosen","type":"Creature — Human Cleric","rarity":"Uncommon","setName":"Tenth Edition"},` + narsetJSON + `]}`))
		}
	})
	mux.HandleFunc("/sets", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("name") == "Khans" {
			_, _ = w.Write([]byte(`{"sets":[{"code":"KTK","name":"Khans of Tarkir","type":"expansion","block":"Khans of Tarkir","releaseDate":"2014-09-26"}]}`))
			return
		}
		_, _ = w.Write([]byte(`{"sets":[{"code":"LEA","name":"Limited Edition Alpha","releaseDate":"1993-08-05"},{"code":"KTK","name":"Khans of Tarkir","releaseDate":"2014-09-26"}]}`))
	})

	return httptest.NewServer(mux)
}

var _ = Describe("Client", func() {
	var (
		server *httptest.Server
		client *Client
		ctx    context.Context
	)

	BeforeEach(func() {
		server = newTestServer()
		client = NewClient(WithBaseURL(server.URL))
		ctx = context.Background()
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("CardByID", func() {
		It("returns the card for a known id", func() {
			c, err := client.CardByID(ctx, 386616)
			Expect(err).ToNot(HaveOccurred())
			Expect(c.Name).To(Equal("Narset, Enlightened Master"))
			Expect(c.ManaCost).To(Equal("{3}{U}{R}{W}"))
			Expect(c.Type).To(Equal("Legendary Creature — Human Monk"))
			Expect(c.Rarity).To(Equal("Mythic"))
			Expect(c.SetName).To(Equal("Khans of Tarkir"))
			Expect(c.Text).To(Equal("First strike, hexproof"))
			Expect(c.Flavor).To(BeEmpty())
		})

		It("maps a non-2xx status to ErrFailedRequest", func() {
			_, err := client.CardByID(ctx, 173132123)
			var failed *ErrFailedRequest
			Expect(errors.As(err, &failed)).To(BeTrue())
			Expect(failed.Status).To(Equal(http.StatusNotFound))
		})

		It("returns ErrCardNotFound for an empty envelope", func() {
			_, err := client.CardByID(ctx, 999)
			var notFound *ErrCardNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())
			Expect(notFound.ID).To(Equal(uint64(999)))
		})
	})

	Describe("CardsByExactName", func() {
		It("finds the card matching the quoted name", func() {
			cards, err := client.CardsByExactName(ctx, "Narset, Enlightened Master")
			Expect(err).ToNot(HaveOccurred())
			Expect(cards).To(HaveLen(1))
			Expect(cards[0].Name).To(Equal("Narset, Enlightened Master"))
		})

		It("returns ErrNoSuchCardName when nothing matches", func() {
			_, err := client.CardsByExactName(ctx, "Narset, Unenlightened Student")
			var noSuch *ErrNoSuchCardName
			Expect(errors.As(err, &noSuch)).To(BeTrue())
			Expect(noSuch.Name).To(Equal("Narset, Unenlightened Student"))
		})
	})

	Describe("SearchCards", func() {
		It("returns cards with page info", func() {
			cards, info, err := client.SearchCards(ctx, SearchQuery{})
			Expect(err).ToNot(HaveOccurred())
			Expect(cards).To(HaveLen(2))
			Expect(info).ToNot(BeNil())
			Expect(info.PageSize).To(Equal(100))
			Expect(info.TotalCount).To(Equal(93643))
			Expect(info.RatelimitRemaining).To(Equal(999))
			Expect(info.TotalPages()).To(Equal(937))
		})

		It("tolerates missing page info headers", func() {
			bare := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"cards":[{"name":"Island"}]}`))
			}))
			defer bare.Close()

			cards, info, err := NewClient(WithBaseURL(bare.URL)).SearchCards(ctx, SearchQuery{})
			Expect(err).ToNot(HaveOccurred())
			Expect(cards).To(HaveLen(1))
			Expect(info).To(BeNil())
		})

		It("applies the client default page size", func() {
			var gotPageSize string
			spy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPageSize = r.URL.Query().Get("pageSize")
				_, _ = w.Write([]byte(`{"cards":[]}`))
			}))
			defer spy.Close()

			_, _, err := NewClient(WithBaseURL(spy.URL), WithPageSize(25)).SearchCards(ctx, SearchQuery{})
			Expect(err).ToNot(HaveOccurred())
			Expect(gotPageSize).To(Equal("25"))
		})
	})

	Describe("CardsPage", func() {
		It("returns a page of cards", func() {
			cards, info, err := client.CardsPage(ctx, 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(cards[0].Name).To(Equal("Ancestor's Chosen"))
			Expect(info.Count).To(Equal(2))
		})

		It("errors past the last page", func() {
			_, _, err := client.CardsPage(ctx, 9999999)
			var noPage *ErrNoSuchPage
			Expect(errors.As(err, &noPage)).To(BeTrue())
		})
	})

	Describe("Sets", func() {
		It("lists all sets", func() {
			sets, err := client.Sets(ctx, "")
			Expect(err).ToNot(HaveOccurred())
			Expect(sets).To(HaveLen(2))
		})

		It("filters sets by name", func() {
			sets, err := client.Sets(ctx, "Khans")
			Expect(err).ToNot(HaveOccurred())
			Expect(sets).To(HaveLen(1))
			Expect(sets[0].Code).To(Equal("KTK"))
		})
	})

	Describe("Ratelimit", func() {
		It("reports the remaining budget", func() {
			info, err := client.Ratelimit(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(info.RatelimitLimit).To(Equal(1000))
			Expect(info.RatelimitRemaining).To(Equal(999))
		})
	})

	Describe("response cache", func() {
		It("serves repeated requests from disk", func() {
			hits := 0
			counting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits++
				w.Header().Set("Link", "<x>; rel=\"first\"")
				w.Header().Set("Page-Size", "100")
				w.Header().Set("Count", "1")
				w.Header().Set("Total-Count", "1")
				w.Header().Set("Ratelimit-Limit", "1000")
				w.Header().Set("Ratelimit-Remaining", "998")
				_, _ = w.Write([]byte(`{"cards":[{"name":"Island"}]}`))
			}))
			defer counting.Close()

			cached := NewClient(WithBaseURL(counting.URL), WithCache(GinkgoT().TempDir(), 0))

			for i := 0; i < 3; i++ {
				cards, info, err := cached.SearchCards(ctx, SearchQuery{Page: 1})
				Expect(err).ToNot(HaveOccurred())
				Expect(cards).To(HaveLen(1))
				Expect(info).ToNot(BeNil())
				Expect(info.RatelimitRemaining).To(Equal(998))
			}

			Expect(hits).To(Equal(1))
		})
	})
})
