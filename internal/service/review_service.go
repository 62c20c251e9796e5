package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"onyx/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrDocumentNotFound = errors.New("document not found in queue")
	ErrReviewInProgress = errors.New("another document is already under review")
	ErrNoActiveReview   = errors.New("no document is under review")
)

type extractor interface {
	Extract(ctx context.Context, data []byte, fileName string) *models.Draft
}

// reviewSession is the per-user slice of ambient state: the upload queue,
// the single document under review and its draft. It lives in memory only
// and vanishes with the process.
type reviewSession struct {
	queue   []*models.PendingDocument
	current *models.PendingDocument
	draft   *models.Draft
}

// ReviewService drives the document review workflow:
//
//	queued -> under_review -> approved (committed to the ledger, dequeued)
//	                        -> queued  (cancelled; draft discarded)
//
// At most one document per user is under review at a time. Reviewing a
// queued document again after a cancel re-invokes extraction and discards
// any prior draft. An approved document leaves the queue for good.
type ReviewService struct {
	mu        sync.Mutex
	sessions  map[string]*reviewSession
	extractor extractor
	expenses  *ExpenseService
	logger    *zap.Logger
}

func NewReviewService(extractor extractor, expenses *ExpenseService, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		sessions:  make(map[string]*reviewSession),
		extractor: extractor,
		expenses:  expenses,
		logger:    logger,
	}
}

func (s *ReviewService) session(username string) *reviewSession {
	sess, ok := s.sessions[username]
	if !ok {
		sess = &reviewSession{}
		s.sessions[username] = sess
	}
	return sess
}

// Upload adds a document to the user's queue in the queued state.
func (s *ReviewService) Upload(username, fileName string, data []byte) *models.PendingDocument {
	doc := &models.PendingDocument{
		ID:         uuid.New(),
		FileName:   fileName,
		Size:       int64(len(data)),
		Data:       data,
		State:      models.DocumentQueued,
		UploadedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(username)
	sess.queue = append(sess.queue, doc)

	s.logger.Info("Document queued for review",
		zap.String("user", username),
		zap.String("file", fileName),
		zap.Int64("size", doc.Size),
	)

	return doc
}

// Queue returns the user's pending documents in upload order.
func (s *ReviewService) Queue(username string) []*models.PendingDocument {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(username)
	docs := make([]*models.PendingDocument, len(sess.queue))
	copy(docs, sess.queue)
	return docs
}

// StartReview moves a queued document to under_review and runs extraction,
// discarding any prior draft for it. The session holds a single review
// slot: a second review without an approve or cancel fails.
func (s *ReviewService) StartReview(ctx context.Context, username string, docID uuid.UUID) (*models.PendingDocument, *models.Draft, error) {
	s.mu.Lock()
	sess := s.session(username)

	if sess.current != nil {
		s.mu.Unlock()
		return nil, nil, ErrReviewInProgress
	}

	var doc *models.PendingDocument
	for _, d := range sess.queue {
		if d.ID == docID {
			doc = d
			break
		}
	}
	if doc == nil {
		s.mu.Unlock()
		return nil, nil, ErrDocumentNotFound
	}

	doc.State = models.DocumentUnderReview
	sess.current = doc
	sess.draft = nil
	s.mu.Unlock()

	// The remote call runs outside the lock; the reserved slot keeps the
	// session consistent while it is in flight.
	draft := s.extractor.Extract(ctx, doc.Data, doc.FileName)

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess.current != doc {
		// The review was cancelled while extraction ran; drop the draft.
		return nil, nil, ErrNoActiveReview
	}
	sess.draft = draft

	return doc, draft, nil
}

// CurrentReview returns the document under review and its draft, if any.
func (s *ReviewService) CurrentReview(username string) (*models.PendingDocument, *models.Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(username)
	if sess.current == nil {
		return nil, nil, false
	}
	return sess.current, sess.draft, true
}

// Approve commits the (possibly edited) draft fields to the ledger and
// removes the document from the queue. Validation failures leave the
// review open so the user can correct the fields and try again.
func (s *ReviewService) Approve(ctx context.Context, username string, edited models.Draft) (*models.Expense, error) {
	s.mu.Lock()
	sess := s.session(username)
	doc := sess.current
	s.mu.Unlock()

	if doc == nil {
		return nil, ErrNoActiveReview
	}

	expense, err := s.expenses.Add(ctx, edited.Date, string(edited.Category), edited.Amount, edited.Description)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc.State = models.DocumentApproved
	for i, d := range sess.queue {
		if d == doc {
			sess.queue = append(sess.queue[:i], sess.queue[i+1:]...)
			break
		}
	}
	sess.current = nil
	sess.draft = nil

	s.logger.Info("Review approved",
		zap.String("user", username),
		zap.String("file", doc.FileName),
		zap.Int64("expense_id", expense.ID),
	)

	return expense, nil
}

// Cancel discards the draft and returns the document to the queue.
func (s *ReviewService) Cancel(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(username)
	if sess.current == nil {
		return ErrNoActiveReview
	}

	sess.current.State = models.DocumentQueued
	sess.current = nil
	sess.draft = nil

	return nil
}
