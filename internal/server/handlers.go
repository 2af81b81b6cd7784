package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/cache"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/metrics"
	"github.com/jonathan/resume-matcher/internal/server/middleware"
	"github.com/jonathan/resume-matcher/internal/types"
)

// MaxBodyBytes caps request bodies before decoding.
const MaxBodyBytes int64 = 8 << 20

// metricsSource labels analyses run by the HTTP API.
const metricsSource = "http"

// handleAnalyze scores one résumé against one job description.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.rejectRequest(w, r, err)
		return
	}
	if err := req.ValidateWithLimits(s.cfg.Limits); err != nil {
		s.rejectRequest(w, r, err)
		return
	}

	result, cached, err := s.analyzeCached(r.Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		s.log.Error("analysis failed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err),
		)
		s.writeError(w, err)
		return
	}

	s.log.Info("analysis completed", append([]zap.Field{
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.Bool("cached", cached),
	}, logger.AnalysisFields(result)...)...)

	s.jsonResponse(w, http.StatusOK, types.AnalyzeResponse{
		AnalysisID: uuid.New(),
		Cached:     cached,
		Result:     result,
	})
}

// handleAnalyzeBatch scores many résumés against one job description.
// Results keep the order of the request.
func (s *Server) handleAnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchAnalyzeRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.rejectRequest(w, r, err)
		return
	}
	if err := req.ValidateWithLimits(s.cfg.Limits); err != nil {
		s.rejectRequest(w, r, err)
		return
	}

	results := make([]*types.AnalysisResult, len(req.Resumes))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(max(s.cfg.Server.BatchConcurrency, 1))
	for i, resume := range req.Resumes {
		g.Go(func() error {
			result, _, err := s.analyzeCached(ctx, resume, req.JobDescription)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error("batch analysis failed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err),
		)
		s.writeError(w, err)
		return
	}

	s.log.Info("batch analysis completed",
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.Int("resumes", len(results)),
	)

	s.jsonResponse(w, http.StatusOK, types.BatchAnalyzeResponse{
		AnalysisID: uuid.New(),
		Results:    results,
	})
}

// analyzeCached consults the cache, runs the engine on a miss and stores the
// result. Cache failures are logged and never fail the request.
func (s *Server) analyzeCached(ctx context.Context, resumeText, jobText string) (*types.AnalysisResult, bool, error) {
	var key string
	if s.cache != nil {
		key = cache.Key(resumeText, jobText)
		hit, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			s.metrics.ObserveCache(metrics.CacheError)
			s.log.Warn("cache lookup failed", zap.Error(err))
		case ok:
			s.metrics.ObserveCache(metrics.CacheHit)
			return hit, true, nil
		default:
			s.metrics.ObserveCache(metrics.CacheMiss)
		}
	}

	done := s.metrics.Track(metricsSource)
	start := time.Now()
	result, err := s.analyze(resumeText, jobText)
	done()
	if err != nil {
		s.metrics.ObserveAnalysis(metricsSource, metrics.OutcomeFailure, time.Since(start), 0)
		return nil, false, err
	}
	s.metrics.ObserveAnalysis(metricsSource, metrics.OutcomeSuccess, time.Since(start), result.OverallScore)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, result, s.cfg.Cache.TTL); err != nil {
			s.metrics.ObserveCache(metrics.CacheError)
			s.log.Warn("cache store failed", zap.Error(err))
		}
	}
	return result, false, nil
}

// rejectRequest answers a request that failed decoding or validation.
func (s *Server) rejectRequest(w http.ResponseWriter, r *http.Request, err error) {
	s.metrics.ObserveAnalysis(metricsSource, metrics.OutcomeInvalid, 0, 0)
	s.log.Info("request rejected",
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.Error(err),
	)
	s.writeError(w, err)
}

// decodeBody decodes a single JSON value of at most MaxBodyBytes.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &ErrPayloadTooLarge{Limit: tooLarge.Limit}
		}
		if errors.Is(err, io.EOF) {
			return &ErrBadRequest{Message: "empty body"}
		}
		return &ErrBadRequest{Message: err.Error()}
	}
	if dec.More() {
		return &ErrBadRequest{Message: "unexpected data after JSON object"}
	}
	return nil
}
