package contact_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/socialsync/internal/commands"
	"github.com/goliatone/socialsync/internal/contact"
	"github.com/goliatone/socialsync/pkg/testsupport"
)

type recordingNotifier struct {
	sent []contact.Email
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, msg *contact.Message) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, contact.BuildEmail(msg))
	return nil
}

func validSubmission() contact.Submission {
	return contact.Submission{Name: "Ana", Email: "a@x.com", Subject: "Hi", Message: "Test"}
}

func TestSubmitStoresAndNotifies(t *testing.T) {
	store := contact.NewMemoryStore()
	notifier := &recordingNotifier{}
	requested := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, err := contact.NewService(store,
		contact.WithNotifier(notifier),
		contact.WithClock(func() time.Time { return requested }),
	)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	result, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !result.Success || result.Message != contact.SuccessMessage {
		t.Fatalf("unexpected result %+v", result)
	}

	messages := store.Messages()
	if len(messages) != 1 {
		t.Fatalf("expected one stored message, got %d", len(messages))
	}
	stored := messages[0]
	if stored.Status != contact.StatusNew {
		t.Fatalf("expected status new, got %q", stored.Status)
	}
	if stored.ReceivedAt.Before(requested) {
		t.Fatalf("receipt %v earlier than request %v", stored.ReceivedAt, requested)
	}
	if stored.Document()["_type"] != contact.DocumentType {
		t.Fatalf("expected contactMessage document, got %v", stored.Document()["_type"])
	}

	if len(notifier.sent) != 1 || notifier.sent[0].Subject != "New Contact Form: Hi" {
		t.Fatalf("expected one notification, got %+v", notifier.sent)
	}
}

func TestSubmitRejectsBlankFields(t *testing.T) {
	cases := map[string]contact.Submission{
		"name":    {Name: "", Email: "a@x.com", Subject: "Hi", Message: "Test"},
		"email":   {Name: "Ana", Email: "   ", Subject: "Hi", Message: "Test"},
		"subject": {Name: "Ana", Email: "a@x.com", Message: "Test"},
		"message": {Name: "Ana", Email: "a@x.com", Subject: "Hi", Message: "\n\t"},
	}
	for field, sub := range cases {
		t.Run(field, func(t *testing.T) {
			store := contact.NewMemoryStore()
			notifier := &recordingNotifier{}
			svc, err := contact.NewService(store, contact.WithNotifier(notifier))
			if err != nil {
				t.Fatalf("NewService: %v", err)
			}

			result, err := svc.Submit(context.Background(), sub)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !commands.IsValidation(err) {
				t.Fatalf("expected validation category, got %v", err)
			}
			if result.Success {
				t.Fatal("expected unsuccessful result")
			}
			if len(store.Messages()) != 0 || len(notifier.sent) != 0 {
				t.Fatal("expected no side effects")
			}
		})
	}
}

func TestSubmitSucceedsWhenNotificationFails(t *testing.T) {
	store := contact.NewMemoryStore()
	svc, err := contact.NewService(store, contact.WithNotifier(&recordingNotifier{err: errors.New("smtp down")}))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	outcome, err := svc.SubmitWithOutcome(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("expected stored submission to succeed, got %v", err)
	}
	if !outcome.Result.Success {
		t.Fatal("expected success result")
	}
	if outcome.MessageID == "" {
		t.Fatal("expected stored message id")
	}
	if outcome.NotificationErr == nil || !goerrors.HasCategory(outcome.NotificationErr, goerrors.CategoryExternal) {
		t.Fatalf("expected external notification error, got %v", outcome.NotificationErr)
	}
	if len(store.Messages()) != 1 {
		t.Fatal("expected message to stay stored")
	}
}

func TestSubmitStaysSuccessfulWhenNotificationOutlivesDeadline(t *testing.T) {
	store := contact.NewMemoryStore()
	blocking := contact.NotifierFunc(func(ctx context.Context, _ *contact.Message) error {
		<-ctx.Done()
		return ctx.Err()
	})
	svc, err := contact.NewService(store,
		contact.WithNotifier(blocking),
		contact.WithTimeout(20*time.Millisecond),
		contact.WithNotifyTimeout(60*time.Millisecond),
	)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	outcome, err := svc.SubmitWithOutcome(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("expected stored submission to succeed, got %v", err)
	}
	if !outcome.Result.Success || outcome.Result.Message != contact.SuccessMessage {
		t.Fatalf("unexpected result %+v", outcome.Result)
	}
	if !errors.Is(outcome.NotificationErr, context.DeadlineExceeded) {
		t.Fatalf("expected notification deadline error, got %v", outcome.NotificationErr)
	}
	if len(store.Messages()) != 1 {
		t.Fatalf("expected one stored message, got %d", len(store.Messages()))
	}
}

func TestSubmitNotifiesAfterCallerCancels(t *testing.T) {
	store := contact.NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var notifyErr error
	notifier := contact.NotifierFunc(func(notifyCtx context.Context, _ *contact.Message) error {
		cancel()
		notifyErr = notifyCtx.Err()
		return nil
	})
	svc, err := contact.NewService(store, contact.WithNotifier(notifier))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	result, err := svc.Submit(ctx, validSubmission())
	if err != nil {
		t.Fatalf("expected success after caller cancellation, got %v", err)
	}
	if !result.Success {
		t.Fatalf("unexpected result %+v", result)
	}
	if notifyErr != nil {
		t.Fatalf("expected notification context to survive cancellation, got %v", notifyErr)
	}
	if len(store.Messages()) != 1 {
		t.Fatal("expected message to stay stored")
	}
}

func TestSubmitFailsWhenPersistFails(t *testing.T) {
	store := contact.NewMemoryStore()
	store.FailWith(errors.New("store offline"))
	notifier := &recordingNotifier{}
	svc, err := contact.NewService(store, contact.WithNotifier(notifier))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	result, err := svc.Submit(context.Background(), validSubmission())
	if err == nil {
		t.Fatal("expected persist error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryExternal) {
		t.Fatalf("expected external category, got %v", err)
	}
	if commands.IsValidation(err) {
		t.Fatal("persist failure must not be reported as validation")
	}
	if result.Success || result.Message != contact.FailureMessage {
		t.Fatalf("unexpected result %+v", result)
	}
	if len(notifier.sent) != 0 {
		t.Fatal("expected no notification when nothing was stored")
	}
}

func TestNewServiceRequiresStore(t *testing.T) {
	if _, err := contact.NewService(nil); !errors.Is(err, contact.ErrStoreRequired) {
		t.Fatalf("expected ErrStoreRequired, got %v", err)
	}
}

func TestBuildEmailEscapesMarkup(t *testing.T) {
	msg := contact.NewMessage(contact.Submission{
		Name:    "<b>Ana</b>",
		Email:   "a@x.com",
		Subject: "Hi",
		Message: "line one\nline <two>",
	}, time.Now())

	email := contact.BuildEmail(msg)
	if email.ReplyTo != "a@x.com" {
		t.Fatalf("expected reply-to submitter, got %q", email.ReplyTo)
	}
	if !strings.Contains(email.HTML, "&lt;b&gt;Ana&lt;/b&gt;") {
		t.Fatalf("expected escaped name, got %s", email.HTML)
	}
	if !strings.Contains(email.HTML, "line one<br>line &lt;two&gt;") {
		t.Fatalf("expected newline converted to <br>, got %s", email.HTML)
	}
	for _, want := range []string{"Name: <b>Ana</b>", "Email: a@x.com", "Subject: Hi", "line one\nline <two>"} {
		if !strings.Contains(email.Text, want) {
			t.Fatalf("expected text body to contain %q, got %q", want, email.Text)
		}
	}
}

func TestMailNotifierRequiresConfiguration(t *testing.T) {
	notifier := contact.NewMailNotifier(contact.MailConfig{Port: 587})
	err := notifier.Notify(context.Background(), contact.NewMessage(validSubmission(), time.Now()))
	if !errors.Is(err, contact.ErrMailNotConfigured) {
		t.Fatalf("expected ErrMailNotConfigured, got %v", err)
	}
}

type recordingCreator struct {
	docs []map[string]any
}

func (c *recordingCreator) CreateDocument(_ context.Context, doc map[string]any) (string, error) {
	c.docs = append(c.docs, doc)
	return "doc-1", nil
}

func TestSanityStoreCreatesContactDocument(t *testing.T) {
	creator := &recordingCreator{}
	store := contact.NewSanityStore(creator)
	received := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	id, err := store.Save(context.Background(), contact.NewMessage(validSubmission(), received))
	if err != nil || id != "doc-1" {
		t.Fatalf("Save: id=%q err=%v", id, err)
	}
	doc := creator.docs[0]
	if doc["_type"] != "contactMessage" || doc["status"] != "new" || doc["name"] != "Ana" {
		t.Fatalf("unexpected document %#v", doc)
	}
	if doc["receivedAt"] != "2025-03-01T12:00:00Z" {
		t.Fatalf("unexpected receivedAt %v", doc["receivedAt"])
	}
}

func TestBunStoreRoundTrip(t *testing.T) {
	db := testsupport.NewBunDB(t, (*contact.Message)(nil))
	store := contact.NewBunStore(db)
	ctx := context.Background()

	id, err := store.Save(ctx, contact.NewMessage(validSubmission(), time.Now()))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Ana" || got.Status != contact.StatusNew {
		t.Fatalf("unexpected stored message %+v", got)
	}
}
