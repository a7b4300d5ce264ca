package app

import (
	"context"
	"fmt"

	"moodprobe/domain/bank"
	"moodprobe/domain/belief"
	"moodprobe/domain/catalog"
	"moodprobe/domain/core"
	apperrors "moodprobe/internal/errors"
	"moodprobe/ports"
)

// AssessmentService is the session orchestrator: the host-facing
// surface that sequences question selection, response processing,
// termination and resolution over a session repository.
type AssessmentService struct {
	catalog   *catalog.Catalog
	bank      *bank.Bank
	scorer    *belief.Scorer
	processor *belief.Processor
	evaluator *belief.Evaluator
	resolver  *belief.Resolver
	sessions  ports.SessionRepository
	defaults  belief.TerminationCriteria
}

// NewAssessmentService wires the engine components over the given
// repository using the reference likelihood and response models and
// the documented default stopping rule.
func NewAssessmentService(cat *catalog.Catalog, b *bank.Bank, sessions ports.SessionRepository) *AssessmentService {
	return NewAssessmentServiceWithModels(cat, b, sessions,
		belief.NewReferenceLikelihood(), belief.UniformResponse{}, belief.DefaultCriteria())
}

// NewAssessmentServiceWithModels lets the host substitute calibrated
// likelihood/response models and its own default termination criteria.
func NewAssessmentServiceWithModels(cat *catalog.Catalog, b *bank.Bank, sessions ports.SessionRepository,
	likelihood belief.LikelihoodModel, response belief.ResponseModel, defaults belief.TerminationCriteria) *AssessmentService {
	evaluator := belief.NewEvaluator()
	return &AssessmentService{
		catalog:   cat,
		bank:      b,
		scorer:    belief.NewScorer(likelihood, response),
		processor: belief.NewProcessor(likelihood, evaluator),
		evaluator: evaluator,
		resolver:  belief.NewResolver(cat, evaluator),
		sessions:  sessions,
		defaults:  defaults,
	}
}

// CreateSession starts a fresh assessment. A nil criteria uses the
// service's configured defaults.
func (s *AssessmentService) CreateSession(ctx context.Context, criteria *belief.TerminationCriteria) (*belief.Session, error) {
	c := s.defaults
	if criteria != nil {
		c = *criteria
	}
	sess := belief.NewSession(s.catalog, c)
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, apperrors.Wrapf(err, "saving new session %s", sess.ID)
	}
	return sess, nil
}

// GetSession returns the live session with the given id.
func (s *AssessmentService) GetSession(ctx context.Context, id core.SessionID) (*belief.Session, error) {
	return s.sessions.Get(ctx, id)
}

// NextQuestion returns the most informative unanswered question, or
// nil when the bank is exhausted and the host should force resolution.
func (s *AssessmentService) NextQuestion(ctx context.Context, id core.SessionID) (*bank.Question, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.scorer.SelectNext(sess, s.bank), nil
}

// SubmitResponse applies an answered option and returns the refreshed
// confidence metrics. Unknown ids or values and re-answered questions
// fail with InvalidResponse, leaving the session untouched.
func (s *AssessmentService) SubmitResponse(ctx context.Context, id core.SessionID, questionID core.QuestionID, optionValue int) (belief.ConfidenceMetrics, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return belief.ConfidenceMetrics{}, err
	}
	if s.evaluator.ShouldTerminate(sess) {
		// Terminated sessions are read-only except for resolution.
		return belief.ConfidenceMetrics{}, fmt.Errorf("%w: session %s", core.ErrSessionTerminated, id)
	}
	q, err := s.bank.Get(questionID)
	if err != nil {
		return belief.ConfidenceMetrics{}, core.NewInvalidResponseError(err.Error())
	}
	metrics, err := s.processor.Apply(sess, q, optionValue)
	if err != nil {
		return belief.ConfidenceMetrics{}, err
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return belief.ConfidenceMetrics{}, apperrors.Wrapf(err, "saving session %s after response", sess.ID)
	}
	return metrics, nil
}

// ShouldTerminate reports whether the session's stopping rule is met.
func (s *AssessmentService) ShouldTerminate(ctx context.Context, id core.SessionID) (bool, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return s.evaluator.ShouldTerminate(sess), nil
}

// Resolve produces the final state profile of a terminated session.
// A session whose question bank is exhausted resolves even when no
// stopping criterion has fired, since no call sequence could ever
// terminate it otherwise.
func (s *AssessmentService) Resolve(ctx context.Context, id core.SessionID) (*belief.StateProfile, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.evaluator.ShouldTerminate(sess) && len(s.bank.Unanswered(sess.Answered())) == 0 {
		return s.resolver.ResolveExhausted(sess)
	}
	return s.resolver.Resolve(sess)
}
