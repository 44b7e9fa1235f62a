package commerce

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListEntriesSendsAuthAndParams(t *testing.T) {
	var gotAuth string
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = map[string]string{
			"campaign_id": r.URL.Query().Get("campaign_id"),
			"status":      r.URL.Query().Get("status"),
			"limit":       r.URL.Query().Get("limit"),
		}
		_ = json.NewEncoder(w).Encode(EntryPage{
			Data:    []Entry{{ID: "ent_1", CampaignID: "camp_1", Status: "pending"}},
			HasMore: false,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", "sk_test_123")
	page, err := client.ListEntries(context.Background(), EntryListParams{
		CampaignID: "camp_1",
		Status:     "pending",
		Limit:      25,
	})
	if err != nil {
		t.Fatalf("list entries failed: %v", err)
	}
	if gotAuth != "Bearer sk_test_123" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotQuery["campaign_id"] != "camp_1" || gotQuery["status"] != "pending" || gotQuery["limit"] != "25" {
		t.Fatalf("unexpected query params %v", gotQuery)
	}
	if len(page.Data) != 1 || page.Data[0].ID != "ent_1" {
		t.Fatalf("unexpected page %+v", page)
	}
}

func TestApproveEntryPostsPayoutBody(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(Entry{ID: "ent_9", Status: "approved", CalculatedPayout: 100})
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk")
	entry, err := client.ApproveEntry(context.Background(), "ent_9", 100.00, map[string]any{"view_count": 50000})
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if gotPath != "/v1/entries/ent_9/approve" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotBody["payout_amount"] != 100.00 {
		t.Fatalf("unexpected body %v", gotBody)
	}
	if entry.Status != "approved" {
		t.Fatalf("unexpected entry %+v", entry)
	}
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
	}
	for _, tc := range cases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		}))
		client := NewClient(server.URL, "sk")
		_, err := client.GetEntry(context.Background(), "ent_x")
		server.Close()
		if !errors.Is(err, tc.want) {
			t.Fatalf("status %d: expected %v, got %v", tc.status, tc.want, err)
		}
	}
}

func TestUnmappedStatusBecomesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]string{"code": "rate_limited", "message": "slow down"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk")
	_, err := client.GetEntry(context.Background(), "ent_x")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests || apiErr.Code != "rate_limited" {
		t.Fatalf("unexpected api error %+v", apiErr)
	}
}

func TestDenyEntrySendsReason(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(Entry{ID: "ent_2", Status: "rejected", StatusReason: "spam"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk")
	entry, err := client.DenyEntry(context.Background(), "ent_2", "spam")
	if err != nil {
		t.Fatalf("deny failed: %v", err)
	}
	if gotBody["reason"] != "spam" {
		t.Fatalf("unexpected body %v", gotBody)
	}
	if entry.StatusReason != "spam" {
		t.Fatalf("unexpected entry %+v", entry)
	}
}
