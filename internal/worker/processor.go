// Package worker consumes analysis requests from an AMQP queue and publishes replies.
package worker

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/metrics"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Reply statuses.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// metricsSource labels analyses run by the worker.
const metricsSource = "amqp"

// Request is the body of one queued analysis.
type Request struct {
	ID             string `json:"id"`
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

// Reply is published for every consumed message, malformed ones included.
type Reply struct {
	ID     string                `json:"id"`
	Status string                `json:"status"`
	Result *types.AnalysisResult `json:"result,omitempty"`
	Error  string                `json:"error,omitempty"`
}

// Processor turns a request body into a reply body. It has no broker dependency.
type Processor struct {
	limits  types.Limits
	log     *zap.Logger
	metrics *metrics.Metrics
	analyze func(resumeText, jobText string) (*types.AnalysisResult, error)
}

// NewProcessor creates a processor. log and m may be nil.
func NewProcessor(limits types.Limits, log *zap.Logger, m *metrics.Metrics) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{limits: limits, log: log, metrics: m, analyze: analysis.Analyze}
}

// Process handles one message body and returns the encoded reply.
// Requests without an id get a generated one so the reply stays traceable.
func (p *Processor) Process(body []byte) []byte {
	reply := p.process(body)
	data, err := json.Marshal(reply)
	if err != nil {
		p.log.Error("failed to encode reply", zap.String("id", reply.ID), zap.Error(err))
		data, _ = json.Marshal(Reply{ID: reply.ID, Status: StatusFailed, Error: "failed to encode result"})
	}
	return data
}

func (p *Processor) process(body []byte) Reply {
	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		p.metrics.ObserveAnalysis(metricsSource, metrics.OutcomeInvalid, 0, 0)
		p.log.Warn("malformed message", zap.Error(err))
		return Reply{ID: uuid.NewString(), Status: StatusFailed, Error: "malformed message: " + err.Error()}
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	ar := types.AnalyzeRequest{ResumeText: req.ResumeText, JobDescription: req.JobDescription}
	if err := ar.ValidateWithLimits(p.limits); err != nil {
		p.metrics.ObserveAnalysis(metricsSource, metrics.OutcomeInvalid, 0, 0)
		p.log.Info("request rejected", zap.String("id", req.ID), zap.Error(err))
		return Reply{ID: req.ID, Status: StatusFailed, Error: err.Error()}
	}

	done := p.metrics.Track(metricsSource)
	start := time.Now()
	result, err := p.analyze(req.ResumeText, req.JobDescription)
	done()
	if err != nil {
		p.metrics.ObserveAnalysis(metricsSource, metrics.OutcomeFailure, time.Since(start), 0)
		p.log.Error("analysis failed", zap.String("id", req.ID), zap.Error(err))
		return Reply{ID: req.ID, Status: StatusFailed, Error: "analysis failed"}
	}

	p.metrics.ObserveAnalysis(metricsSource, metrics.OutcomeSuccess, time.Since(start), result.OverallScore)
	p.log.Info("analysis completed", append([]zap.Field{zap.String("id", req.ID)}, logger.AnalysisFields(result)...)...)
	return Reply{ID: req.ID, Status: StatusCompleted, Result: result}
}
