package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"scale_workshop/internal/domain/entities"
	"scale_workshop/internal/domain/lifecycle"
	"scale_workshop/internal/infrastructure/metrics"
	"scale_workshop/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrInvoiceSettled                 = errors.New("invoice already settled")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
	ErrPaymentPending                 = errors.New("invoice has a pending payment")
	ErrPaymentNotRecorded             = errors.New("payment charged but not recorded")
)

// PaymentOptions tunes payload checks. Strict requires payment_method_id and
// a payer, as the live provider does; the mock gateway does not.
type PaymentOptions struct {
	Strict            bool
	DefaultPayerEmail string
}

// IInvoicePaymentUseCase charges the outstanding balance of a job's invoice.
type IInvoicePaymentUseCase interface {
	Charge(ctx context.Context, jobID string, payload json.RawMessage) (entities.InvoicePayment, error)
	List(ctx context.Context, jobID string) ([]entities.InvoicePayment, error)
}

type InvoicePaymentUseCase struct {
	repo    interfaces.IJobRepository
	gateway interfaces.IPaymentGateway
	machine *lifecycle.Machine
	metrics *metrics.Metrics
	opts    PaymentOptions
}

var _ IInvoicePaymentUseCase = (*InvoicePaymentUseCase)(nil)

func NewInvoicePaymentUseCase(repo interfaces.IJobRepository, gateway interfaces.IPaymentGateway, machine *lifecycle.Machine, m *metrics.Metrics, opts PaymentOptions) *InvoicePaymentUseCase {
	return &InvoicePaymentUseCase{repo: repo, gateway: gateway, machine: machine, metrics: m, opts: opts}
}

// Charge sends the outstanding invoice balance to the payment provider and
// records the outcome on the invoice. The amount always comes from the stored
// invoice, never from the payload.
func (u *InvoicePaymentUseCase) Charge(ctx context.Context, jobID string, payload json.RawMessage) (entities.InvoicePayment, error) {
	jobID, err := requireID("job_id", jobID)
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	slog.InfoContext(ctx, "[payment][usecase] charge start", "job_id", jobID, "payload_len", len(payload))

	if len(strings.TrimSpace(string(payload))) == 0 {
		payload = json.RawMessage("{}")
	}
	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil || req == nil {
		slog.WarnContext(ctx, "[payment][usecase] invalid payload (not-json-object)", "job_id", jobID)
		return entities.InvoicePayment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		slog.ErrorContext(ctx, "[payment][usecase] gateway not configured", "job_id", jobID)
		return entities.InvoicePayment{}, ErrPaymentGatewayNotConfigured
	}

	job, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	if job.Invoice == nil {
		return entities.InvoicePayment{}, &entities.PreconditionError{Transition: "invoice payment", Missing: "invoice"}
	}
	if job.Status == entities.JobStatusCancelled {
		return entities.InvoicePayment{}, &entities.TransitionError{From: job.Status, To: job.Status}
	}
	job, err = u.settlePending(ctx, job)
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	if p, ok := job.Invoice.PendingPayment(); ok {
		slog.WarnContext(ctx, "[payment][usecase] pending payment blocks charge", "job_id", jobID, "payment_id", p.ID)
		return entities.InvoicePayment{}, fmt.Errorf("%w: %s", ErrPaymentPending, p.ID)
	}
	due := job.Invoice.Outstanding()
	if !due.IsPositive() {
		return entities.InvoicePayment{}, ErrInvoiceSettled
	}

	if u.opts.Strict {
		if !hasNonEmptyString(req, "payment_method_id") {
			slog.WarnContext(ctx, "[payment][usecase] missing payment_method_id", "job_id", jobID)
			return entities.InvoicePayment{}, ErrInvalidPaymentPayload
		}
		ensurePayerDefaults(req, u.opts.DefaultPayerEmail)
		if !hasPayer(req) {
			slog.WarnContext(ctx, "[payment][usecase] missing/invalid payer", "job_id", jobID)
			return entities.InvoicePayment{}, ErrInvalidPaymentPayload
		}
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = job.Invoice.InvoiceNumber
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Invoice %s for job %s", job.Invoice.InvoiceNumber, job.JobNumber)
	}
	req["transaction_amount"] = due.InexactFloat64()
	enriched, err := json.Marshal(req)
	if err != nil {
		return entities.InvoicePayment{}, err
	}

	key := chargeKey(job, enriched)
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, key, enriched)
	if err != nil {
		slog.ErrorContext(ctx, "[payment][usecase] payment gateway failed", "job_id", jobID, "idempotency_key", key, "err", err)
		return entities.InvoicePayment{}, classifyGatewayError(err)
	}

	payment := entities.InvoicePayment{
		ID:                 providerID,
		Date:               now(),
		Amount:             due,
		Status:             paymentStatus(providerStatus),
		ProviderPayloadRaw: providerResp,
	}
	if err := u.record(ctx, job, payment); err != nil {
		slog.ErrorContext(ctx, "[payment][usecase] save failed after provider charge", "job_id", jobID, "provider_payment_id", providerID, "err", err)
		return entities.InvoicePayment{}, err
	}
	u.metrics.Payment(string(payment.Status))
	slog.InfoContext(ctx, "[payment][usecase] charge success", "job_id", jobID, "payment_id", payment.ID, "status", payment.Status, "amount", due.StringFixed(2))
	return payment, nil
}

// PaymentNotRecordedError reports a provider charge that could not be stored
// on the invoice.
type PaymentNotRecordedError struct {
	PaymentID string
	Err       error
}

func (e *PaymentNotRecordedError) Error() string {
	return fmt.Sprintf("payment %s charged but not recorded: %v", e.PaymentID, e.Err)
}

func (e *PaymentNotRecordedError) Unwrap() error { return e.Err }

func (e *PaymentNotRecordedError) Is(target error) bool { return target == ErrPaymentNotRecorded }

// record appends an already charged payment to the invoice. A lost version
// race is retried once on the reloaded job; the payment id keeps the retry
// from recording the payment twice.
func (u *InvoicePaymentUseCase) record(ctx context.Context, job entities.Job, payment entities.InvoicePayment) error {
	notRecorded := func(err error) error {
		return &PaymentNotRecordedError{PaymentID: payment.ID, Err: err}
	}
	out, err := u.machine.AddPayment(job, payment)
	if err != nil {
		return notRecorded(err)
	}
	_, err = u.repo.Save(ctx, out, job.Version, nil)
	if err == nil {
		return nil
	}
	if !errors.Is(err, entities.ErrUniquenessConflict) {
		return notRecorded(err)
	}

	slog.WarnContext(ctx, "[payment][usecase] version race after charge, retrying", "job_id", job.ID, "provider_payment_id", payment.ID)
	fresh, err := u.repo.GetByID(ctx, job.ID)
	if err != nil {
		return notRecorded(err)
	}
	if fresh.Invoice != nil {
		if _, ok := fresh.Invoice.Payment(payment.ID); ok {
			return nil
		}
	}
	out, err = u.machine.AddPayment(fresh, payment)
	if err != nil {
		return notRecorded(err)
	}
	if _, err := u.repo.Save(ctx, out, fresh.Version, nil); err != nil {
		return notRecorded(err)
	}
	return nil
}

// settlePending asks the provider for the outcome of every pending payment
// and stores the ones that have settled. Payments still pending are left as is.
func (u *InvoicePaymentUseCase) settlePending(ctx context.Context, job entities.Job) (entities.Job, error) {
	out := job
	changed := false
	for _, p := range job.Invoice.Payments {
		if p.Status != entities.PaymentStatusPending {
			continue
		}
		providerStatus, raw, err := u.gateway.GetPayment(ctx, p.ID)
		if err != nil {
			slog.ErrorContext(ctx, "[payment][usecase] payment status lookup failed", "job_id", job.ID, "payment_id", p.ID, "err", err)
			return entities.Job{}, classifyGatewayError(err)
		}
		status := paymentStatus(providerStatus)
		if status == entities.PaymentStatusPending {
			continue
		}
		out, err = u.machine.SettlePayment(out, p.ID, status, raw)
		if err != nil {
			return entities.Job{}, err
		}
		changed = true
		u.metrics.Payment(string(status))
		slog.InfoContext(ctx, "[payment][usecase] pending payment settled", "job_id", job.ID, "payment_id", p.ID, "status", status)
	}
	if !changed {
		return job, nil
	}
	return u.repo.Save(ctx, out, job.Version, nil)
}

// chargeKey is stable for the same job version and request body, so a
// repeated charge is answered by the provider with the original payment.
func chargeKey(job entities.Job, payload []byte) string {
	name := fmt.Sprintf("scale-workshop/charge/%s/%d/", job.ID, job.Version)
	return uuid.NewSHA1(uuid.NameSpaceURL, append([]byte(name), payload...)).String()
}

func (u *InvoicePaymentUseCase) List(ctx context.Context, jobID string) ([]entities.InvoicePayment, error) {
	jobID, err := requireID("job_id", jobID)
	if err != nil {
		return nil, err
	}
	job, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Invoice == nil {
		return []entities.InvoicePayment{}, nil
	}
	return append([]entities.InvoicePayment(nil), job.Invoice.Payments...), nil
}

func paymentStatus(provider string) entities.PaymentStatus {
	switch strings.ToLower(provider) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayCustomerNotFound, err)
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayInvalidUsers, err)
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills payer.type and, when neither id nor email was
// sent, the configured default payer email.
func ensurePayerDefaults(m map[string]any, defaultEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && defaultEmail != "" {
		payer["email"] = defaultEmail
	}
}
