package booking

import (
	"context"
	"errors"
	"testing"

	"festivo/models"
	"festivo/services/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePlanService runs the real aggregate mutations against an in-memory
// plan so commit tests exercise true occupancy semantics.
type fakePlanService struct {
	plans map[string]*models.PartyPlan
}

func newFakePlanService() *fakePlanService {
	return &fakePlanService{plans: make(map[string]*models.PartyPlan)}
}

func (f *fakePlanService) Get(_ context.Context, ownerID string) (*models.PartyPlan, error) {
	if p, ok := f.plans[ownerID]; ok {
		return p, nil
	}
	p := models.NewPartyPlan("plan-"+ownerID, ownerID)
	f.plans[ownerID] = p
	return p, nil
}

func (f *fakePlanService) Occupy(ctx context.Context, ownerID, categoryKey string, slot models.PlanSlot, addons []models.PlanAddon) (string, error) {
	p, _ := f.Get(ctx, ownerID)
	replaced := p.Occupy(categoryKey, slot)
	for _, a := range addons {
		a.AttachedTo = categoryKey
		p.AttachAddon(a)
	}
	return replaced, nil
}

func (f *fakePlanService) AttachAddon(ctx context.Context, ownerID string, addon models.PlanAddon) error {
	p, _ := f.Get(ctx, ownerID)
	p.AttachAddon(addon)
	return nil
}

func (f *fakePlanService) Remove(ctx context.Context, ownerID, categoryKey string) error {
	p, _ := f.Get(ctx, ownerID)
	p.Remove(categoryKey)
	return nil
}

func (f *fakePlanService) RemoveAddon(ctx context.Context, ownerID, addonID string) error {
	p, _ := f.Get(ctx, ownerID)
	p.RemoveAddon(addonID)
	return nil
}

func (f *fakePlanService) Clear(_ context.Context, ownerID string) error {
	delete(f.plans, ownerID)
	return nil
}

func (f *fakePlanService) Total(ctx context.Context, ownerID string) (float64, error) {
	p, _ := f.Get(ctx, ownerID)
	return pricing.PlanTotal(p), nil
}

func (f *fakePlanService) SavePartyDetails(ctx context.Context, ownerID string, details models.PartyDetails) error {
	p, _ := f.Get(ctx, ownerID)
	p.Details = details
	return nil
}

func (f *fakePlanService) GetPartyDetails(ctx context.Context, ownerID string) (*models.PartyDetails, error) {
	p, _ := f.Get(ctx, ownerID)
	return &p.Details, nil
}

type fakeEnquiryService struct {
	pending int
	sent    []*models.Enquiry
}

func (f *fakeEnquiryService) Send(_ context.Context, e *models.Enquiry) error {
	f.sent = append(f.sent, e)
	return nil
}

func (f *fakeEnquiryService) AwaitingResponses(_ context.Context, _ string) (models.AwaitingResult, error) {
	return models.AwaitingResult{IsAwaiting: f.pending > 0, PendingCount: f.pending}, nil
}

func (f *fakeEnquiryService) PendingCount(_ context.Context, _ string) (int, error) {
	return f.pending, nil
}

func (f *fakeEnquiryService) Respond(_ context.Context, _, _ string) error {
	return nil
}

type fakeGuard struct {
	held     bool
	acquires int
	releases int
}

func (g *fakeGuard) Acquire(_ context.Context, _ string) (bool, error) {
	g.acquires++
	if g.held {
		return false, nil
	}
	g.held = true
	return true, nil
}

func (g *fakeGuard) Release(_ context.Context, _ string) error {
	g.held = false
	g.releases++
	return nil
}

type fakeReplacementStore struct {
	rc      *models.ReplacementContext
	cleared bool
}

func (s *fakeReplacementStore) Get(_ context.Context, _ string) (*models.ReplacementContext, error) {
	return s.rc, nil
}

func (s *fakeReplacementStore) Put(_ context.Context, _ string, rc models.ReplacementContext) error {
	s.rc = &rc
	return nil
}

func (s *fakeReplacementStore) Clear(_ context.Context, _ string) error {
	s.rc = nil
	s.cleared = true
	return nil
}

type fakeSessionStore struct {
	toast   *models.Toast
	restore bool
}

func (s *fakeSessionStore) SetToast(_ context.Context, _ string, toast models.Toast) error {
	s.toast = &toast
	return nil
}

func (s *fakeSessionStore) PopToast(_ context.Context, _ string) (*models.Toast, error) {
	t := s.toast
	s.toast = nil
	return t, nil
}

func (s *fakeSessionStore) SetRestoreFlag(_ context.Context, _ string) error {
	s.restore = true
	return nil
}

func (s *fakeSessionStore) PopRestoreFlag(_ context.Context, _ string) (bool, error) {
	r := s.restore
	s.restore = false
	return r, nil
}

type commitFixture struct {
	svc       *DefaultBookingService
	plans     *fakePlanService
	enquiries *fakeEnquiryService
	guard     *fakeGuard
	repl      *fakeReplacementStore
	sessions  *fakeSessionStore
}

func newCommitFixture() *commitFixture {
	f := &commitFixture{
		plans:     newFakePlanService(),
		enquiries: &fakeEnquiryService{},
		guard:     &fakeGuard{},
		repl:      &fakeReplacementStore{},
		sessions:  &fakeSessionStore{},
	}
	f.svc = &DefaultBookingService{
		PlanSvc:      f.plans,
		EnquirySvc:   f.enquiries,
		Replacements: f.repl,
		Sessions:     f.sessions,
		Guard:        f.guard,
	}
	return f
}

func venueReady() ReadyToCommit {
	return ReadyToCommit{Package: models.EnrichedPackage{
		Package:         models.Package{ID: "sup-a:standard", Name: "Standard", Price: 180},
		SupplierID:      "sup-a",
		SupplierName:    "Supplier A",
		CategoryKey:     models.CategoryVenue,
		BookingDate:     "2025-06-14",
		BookingTimeSlot: models.SlotAfternoon,
		TotalPrice:      180,
	}}
}

func TestCommitOccupiesMainCategory(t *testing.T) {
	f := newCommitFixture()

	result, err := f.svc.Commit(context.Background(), "sess-1", venueReady())
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.Replaced)
	assert.Equal(t, "/plan", result.RouteTo)
	assert.Equal(t, 180.0, result.PlanTotal)

	p := f.plans.plans["sess-1"]
	require.NotNil(t, p)
	occupant, ok := p.Occupant(models.CategoryVenue)
	require.True(t, ok)
	assert.Equal(t, "sup-a", occupant.Supplier.ID)
	assert.Equal(t, "2025-06-14", occupant.BookingDate)

	require.NotNil(t, f.sessions.toast)
	assert.Equal(t, "success", f.sessions.toast.Kind)

	assert.Equal(t, 1, f.guard.acquires)
	assert.Equal(t, 1, f.guard.releases)
}

// A duplicate click lands the same ReadyToCommit twice; the second commit
// overwrites the occupant instead of double-counting it.
func TestCommitTwiceDoesNotDoubleCount(t *testing.T) {
	f := newCommitFixture()
	ready := venueReady()
	ready.Package.Addons = []models.Addon{{ID: "ad-1", Name: "Late checkout", Price: 20}}
	ready.Package.AddonTotal = 20
	ready.Package.TotalPrice = 200

	first, err := f.svc.Commit(context.Background(), "sess-1", ready)
	require.NoError(t, err)

	second, err := f.svc.Commit(context.Background(), "sess-1", ready)
	require.NoError(t, err)

	assert.Equal(t, first.PlanTotal, second.PlanTotal)
	assert.Equal(t, 200.0, second.PlanTotal)
	assert.NotEmpty(t, second.Replaced)

	p := f.plans.plans["sess-1"]
	require.Len(t, p.Slots, 1)
	assert.Len(t, p.AddonsFor(models.CategoryVenue), 1, "attached add-ons are replaced, not accumulated")
}

func TestCommitRejectedWhileAnotherIsRunning(t *testing.T) {
	f := newCommitFixture()
	f.guard.held = true

	_, err := f.svc.Commit(context.Background(), "sess-1", venueReady())
	require.Error(t, err)

	var bookingErr *BookingError
	require.True(t, errors.As(err, &bookingErr))
	assert.Equal(t, "commitInProgress", bookingErr.Code)
}

func TestCommitValidatesPackage(t *testing.T) {
	f := newCommitFixture()
	ready := venueReady()
	ready.Package.SupplierID = ""

	_, err := f.svc.Commit(context.Background(), "sess-1", ready)
	require.Error(t, err)

	var bookingErr *BookingError
	require.True(t, errors.As(err, &bookingErr))
	assert.Equal(t, "validationError", bookingErr.Code)
	assert.Zero(t, f.guard.acquires, "validation runs before the lock is taken")
}

// A supplier from outside the main categories lands as a standalone add-on
// priced at the enriched total.
func TestCommitAddonCategory(t *testing.T) {
	f := newCommitFixture()
	ready := ReadyToCommit{Package: models.EnrichedPackage{
		Package:      models.Package{ID: "sup-s:standard", Name: "Soft Play Hire", Price: 45},
		SupplierID:   "sup-s",
		SupplierName: "Bouncy Town",
		CategoryKey:  "soft play",
		TotalPrice:   45,
	}}

	result, err := f.svc.Commit(context.Background(), "sess-1", ready)
	require.NoError(t, err)
	assert.Contains(t, result.Message, "extra")

	p := f.plans.plans["sess-1"]
	require.Len(t, p.Addons, 1)
	assert.Equal(t, "Bouncy Town - Soft Play Hire", p.Addons[0].Addon.Name)
	assert.Equal(t, 45.0, p.Addons[0].Addon.Price)
	assert.Empty(t, p.Addons[0].AttachedTo)
	assert.Empty(t, p.Slots)
}

// The stored occupant keeps the supplier-level prices, so plan totals still
// resolve for packages that price through the supplier record.
func TestCommitKeepsSupplierPriceFallback(t *testing.T) {
	f := newCommitFixture()
	ready := ReadyToCommit{Package: models.EnrichedPackage{
		Package:       models.Package{ID: "sup-a:custom", Name: "Custom"},
		SupplierID:    "sup-a",
		SupplierName:  "Supplier A",
		CategoryKey:   models.CategoryVenue,
		SupplierPrice: 250,
		BookingDate:   "2025-06-14",
		TotalPrice:    250,
	}}

	result, err := f.svc.Commit(context.Background(), "sess-1", ready)
	require.NoError(t, err)
	assert.Equal(t, 250.0, result.PlanTotal)

	occupant, ok := f.plans.plans["sess-1"].Occupant(models.CategoryVenue)
	require.True(t, ok)
	assert.Equal(t, 250.0, occupant.Supplier.Price)
}

func TestCommitStoresPartyBagBundleTotal(t *testing.T) {
	f := newCommitFixture()
	ready := ReadyToCommit{Package: models.EnrichedPackage{
		Package:      models.Package{ID: "sup-p:standard", Name: "Classic", Price: 4, Quantity: 20},
		SupplierID:   "sup-p",
		SupplierName: "Bag Co",
		CategoryKey:  models.CategoryPartyBags,
		Metadata:     models.SlotMetadata{TotalPrice: 80},
		TotalPrice:   80,
	}}

	result, err := f.svc.Commit(context.Background(), "sess-1", ready)
	require.NoError(t, err)
	assert.Equal(t, 80.0, result.PlanTotal)

	occupant, ok := f.plans.plans["sess-1"].Occupant(models.CategoryPartyBags)
	require.True(t, ok)
	assert.Equal(t, 80.0, occupant.Metadata.TotalPrice)
}

func TestCommitConsumesReplacementContext(t *testing.T) {
	f := newCommitFixture()
	f.repl.rc = &models.ReplacementContext{
		IsReplacement:   true,
		ReturnURL:       "/plan?swapped=venue",
		CurrentSupplier: &models.SupplierRef{ID: "sup-old", Category: models.CategoryVenue},
	}

	result, err := f.svc.Commit(context.Background(), "sess-1", venueReady())
	require.NoError(t, err)
	assert.Equal(t, "/plan?swapped=venue", result.RouteTo)
	assert.True(t, f.repl.cleared, "a finished swap must not leak into later visits")
	assert.Nil(t, f.repl.rc)
}

func TestCommitSendsFollowUpEnquiryWhilePending(t *testing.T) {
	f := newCommitFixture()
	f.enquiries.pending = 1

	_, err := f.svc.Commit(context.Background(), "sess-1", venueReady())
	require.NoError(t, err)

	require.Len(t, f.enquiries.sent, 1)
	assert.Equal(t, "sup-a", f.enquiries.sent[0].SupplierID)
}
