package api

import (
	"context"
	"fmt"

	"github.com/hazyhaar/barlaman-registry/pkg/alerts"
	"github.com/hazyhaar/barlaman-registry/pkg/corpus"
	"github.com/hazyhaar/barlaman-registry/pkg/history"
	"github.com/hazyhaar/barlaman-registry/pkg/kit"
	"github.com/hazyhaar/barlaman-registry/pkg/roster"
	"github.com/hazyhaar/barlaman-registry/pkg/search"
)

// Service bundles the loaded corpus with the engines built on top of it.
// Both HTTP handlers and MCP tools dispatch into the same Service.
type Service struct {
	Store   *corpus.Store
	Engine  *search.Engine
	Matcher *roster.Matcher
	History *history.Builder
	Subs    *alerts.SubscriptionDB // nil when no subscription store is configured
}

// Shared request/response types used by both HTTP and MCP transports.

type searchReq struct {
	Query string
}

type searchResponse struct {
	Query   string         `json:"query"`
	Total   int            `json:"total"`
	Results []search.Match `json:"results"`
}

type resolveReq struct {
	Speaker string
}

type resolveResponse struct {
	Speaker  string        `json:"speaker"`
	Resolved bool          `json:"resolved"`
	MP       *roster.Entry `json:"mp,omitempty"`
}

type historyReq struct {
	MPID string
}

type historyResponse struct {
	MP       *roster.Entry        `json:"mp"`
	Total    int                  `json:"total_interventions"`
	Sessions []history.Entry      `json:"sessions"`
	Topics   []history.TopicCount `json:"topics,omitempty"`
}

// Endpoints returns the three core kit.Endpoints backed by the service.

func searchEndpoint(svc *Service) kit.Endpoint {
	return func(ctx context.Context, request any) (any, error) {
		req := request.(*searchReq)
		results := svc.Engine.Search(ctx, req.Query)
		return searchResponse{Query: req.Query, Total: len(results), Results: results}, nil
	}
}

func resolveEndpoint(svc *Service) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*resolveReq)
		if req.Speaker == "" {
			return nil, fmt.Errorf("speaker is empty")
		}
		mp := svc.Matcher.Resolve(req.Speaker, svc.Store.Roster())
		return resolveResponse{Speaker: req.Speaker, Resolved: mp != nil, MP: mp}, nil
	}
}

func historyEndpoint(svc *Service) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*historyReq)
		mp, ok := svc.Store.MPByID(req.MPID)
		if !ok {
			return nil, fmt.Errorf("unknown mp id %q", req.MPID)
		}
		matched := svc.History.SegmentsFor(mp, svc.Store.Segments())
		entries := svc.History.Build(matched, svc.Store.Sessions(), mp.FullName)

		topics := history.TopicInterests(matched)
		if len(topics) == 0 {
			// No tagged segments: profile from summary points instead.
			topics = history.TopicProfile(entries, history.DefaultTopicKeywords())
		}
		return historyResponse{MP: mp, Total: len(matched), Sessions: entries, Topics: topics}, nil
	}
}
