package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulfrate/gulfrate/internal/dto"
	"github.com/gulfrate/gulfrate/internal/model"
)

type fakeLeadStore struct {
	inserted   []*model.Lead
	marked     []int64
	insertErr  error
	markErr    error
	nextLeadID int64
}

func (f *fakeLeadStore) Insert(_ context.Context, lead *model.Lead) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.nextLeadID++
	lead.ID = f.nextLeadID
	f.inserted = append(f.inserted, lead)
	return nil
}

func (f *fakeLeadStore) MarkEmailSent(_ context.Context, id int64) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.marked = append(f.marked, id)
	return nil
}

type fakeMailer struct {
	sent []*model.Lead
	err  error
}

func (f *fakeMailer) SendLeadConfirmation(_ context.Context, lead *model.Lead) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, lead)
	return nil
}

type fakePublisher struct {
	published []*model.Lead
	err       error
}

func (f *fakePublisher) PublishLeadCreated(_ context.Context, lead *model.Lead) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, lead)
	return nil
}

func leadRequest() *dto.CreateLeadRequest {
	return &dto.CreateLeadRequest{
		FullName:     "Ahmed Khan",
		Email:        "ahmed@example.com",
		CountryCode:  "+91",
		Phone:        "9876543210",
		FromCurrency: "SAR",
		ToCurrency:   "INR",
		Consent:      true,
	}
}

func TestCreateLead_ConsentRequired(t *testing.T) {
	store := &fakeLeadStore{}
	svc := NewLeadService(store, &fakeMailer{}, nil)

	req := leadRequest()
	req.Consent = false

	lead, err := svc.CreateLead(context.Background(), req)
	require.Error(t, err)
	assert.Nil(t, lead)

	fieldErr, ok := AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "consent", fieldErr.Field)
	assert.Empty(t, store.inserted, "lead must not be persisted without consent")
}

func TestCreateLead_Success(t *testing.T) {
	store := &fakeLeadStore{}
	mail := &fakeMailer{}
	pub := &fakePublisher{}
	svc := NewLeadService(store, mail, pub)

	lead, err := svc.CreateLead(context.Background(), leadRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), lead.ID)
	assert.True(t, lead.EmailSent)
	assert.Equal(t, "sa", lead.CountryCode2, "dial-code country defaults to sa")
	assert.Nil(t, lead.TargetRate)
	require.Len(t, mail.sent, 1)
	require.Len(t, store.marked, 1)
	assert.Equal(t, lead.ID, store.marked[0])
	require.Len(t, pub.published, 1)
}

func TestCreateLead_TargetRateKeptWhenSet(t *testing.T) {
	store := &fakeLeadStore{}
	svc := NewLeadService(store, &fakeMailer{}, nil)

	req := leadRequest()
	req.TargetRate = "23.50"
	req.CountryCode2 = "ae"

	lead, err := svc.CreateLead(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, lead.TargetRate)
	assert.Equal(t, "23.50", *lead.TargetRate)
	assert.Equal(t, "ae", lead.CountryCode2)
}

func TestCreateLead_EmailFailureDoesNotFailRequest(t *testing.T) {
	store := &fakeLeadStore{}
	mail := &fakeMailer{err: errors.New("ses unavailable")}
	svc := NewLeadService(store, mail, nil)

	lead, err := svc.CreateLead(context.Background(), leadRequest())
	require.NoError(t, err)

	assert.False(t, lead.EmailSent)
	assert.Empty(t, store.marked, "email_sent stays false when delivery fails")
	require.Len(t, store.inserted, 1, "lead row commits regardless of email outcome")
}

func TestCreateLead_MarkFailureLeavesFlagUnset(t *testing.T) {
	store := &fakeLeadStore{markErr: errors.New("connection reset")}
	svc := NewLeadService(store, &fakeMailer{}, nil)

	lead, err := svc.CreateLead(context.Background(), leadRequest())
	require.NoError(t, err)
	assert.False(t, lead.EmailSent)
}

func TestCreateLead_PublisherFailureIgnored(t *testing.T) {
	store := &fakeLeadStore{}
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := NewLeadService(store, &fakeMailer{}, pub)

	lead, err := svc.CreateLead(context.Background(), leadRequest())
	require.NoError(t, err)
	assert.True(t, lead.EmailSent)
}

func TestCreateLead_StoreErrorPropagates(t *testing.T) {
	store := &fakeLeadStore{insertErr: errors.New("duplicate key")}
	mail := &fakeMailer{}
	svc := NewLeadService(store, mail, nil)

	lead, err := svc.CreateLead(context.Background(), leadRequest())
	require.Error(t, err)
	assert.Nil(t, lead)
	assert.Empty(t, mail.sent, "no email when the insert fails")
}
