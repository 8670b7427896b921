package dialog

//go:generate mockgen -source=machine.go -destination=../../../tests/mock/dialog/machine.go -package=dialogmock

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"salon-booking/internal/domain/calendar"
	"salon-booking/internal/domain/client"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/readmodel"
)

// Inputs understood in every state.
const (
	InputBack  = "back"
	InputReset = "reset"
)

// Inputs understood while awaiting payment.
const (
	InputPaid   = "paid"
	InputCancel = "cancel"
)

// Reply is what a front end renders: a prompt, the choices to offer, and the
// outcome of the step. Error carries a user-facing message; the state is unchanged then.
type Reply struct {
	State       State
	Prompt      string
	Options     []string
	Hold        *readmodel.HoldRM
	Appointment *readmodel.AppointmentRM
	Error       string
}

// Conversation is what a channel front end drives.
type Conversation interface {
	Start(ctx context.Context, userID string) (Reply, error)
	Handle(ctx context.Context, userID, input string) (Reply, error)
}

var _ Conversation = (*Machine)(nil)

type Machine struct {
	commands    commands.BookingCommands
	queries     queries.BookingQueries
	sessions    *Store
	clock       clock.Clock
	location    *time.Location
	horizonDays int
	logger      *slog.Logger
}

func NewMachine(
	cmd commands.BookingCommands,
	qry queries.BookingQueries,
	sessions *Store,
	clk clock.Clock,
	location *time.Location,
	horizonDays int,
	logger *slog.Logger,
) *Machine {
	if horizonDays <= 0 {
		horizonDays = 7
	}
	return &Machine{
		commands:    cmd,
		queries:     qry,
		sessions:    sessions,
		clock:       clk,
		location:    location,
		horizonDays: horizonDays,
		logger:      logger,
	}
}

// Start abandons whatever the user was doing and opens a new booking dialog.
func (m *Machine) Start(ctx context.Context, userID string) (Reply, error) {
	if err := client.ValidateUserID(userID); err != nil {
		return Reply{}, errs.Mark(err, errs.ErrInvalidInput)
	}
	sess := m.sessions.Get(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	m.abandon(ctx, sess)
	sess.Go(StateChooseService)
	return m.render(ctx, sess, ""), nil
}

func (m *Machine) Handle(ctx context.Context, userID, input string) (Reply, error) {
	if err := client.ValidateUserID(userID); err != nil {
		return Reply{}, errs.Mark(err, errs.ErrInvalidInput)
	}
	sess := m.sessions.Get(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	text := strings.TrimSpace(input)
	switch strings.ToLower(text) {
	case InputReset:
		m.abandon(ctx, sess)
		return Reply{State: StateIdle, Prompt: "Booking abandoned."}, nil
	case InputBack:
		if sess.State == StateIdle {
			break
		}
		if sess.State == StateAwaitingPayment {
			m.release(ctx, sess)
		}
		sess.Back()
		return m.render(ctx, sess, ""), nil
	}

	switch sess.State {
	case StateChooseService:
		return m.chooseService(ctx, sess, text), nil
	case StateChooseDate:
		return m.chooseDate(ctx, sess, text)
	case StateChooseTime:
		return m.chooseTime(ctx, sess, text)
	case StateEnterName:
		return m.enterName(ctx, sess, text), nil
	case StateEnterPhone:
		return m.enterPhone(ctx, sess, userID, text)
	case StateAwaitingPayment:
		return m.awaitPayment(ctx, sess, text)
	default:
		return Reply{State: StateIdle, Prompt: "Send start to book an appointment.", Error: "no booking in progress"}, nil
	}
}

func (m *Machine) chooseService(ctx context.Context, sess *Session, text string) Reply {
	for _, svc := range m.queries.ListServices(ctx) {
		if svc.ID == text {
			sess.Draft.ServiceID = svc.ID
			sess.Go(StateChooseDate)
			return m.render(ctx, sess, "")
		}
	}
	return m.render(ctx, sess, "unknown service")
}

func (m *Machine) chooseDate(ctx context.Context, sess *Session, text string) (Reply, error) {
	date, err := calendar.ParseDate(text)
	if err != nil {
		return m.render(ctx, sess, "send a date as YYYY-MM-DD"), nil
	}
	today := m.today()
	if date.Before(today) || date.DaysSince(today) >= m.horizonDays {
		return m.render(ctx, sess, fmt.Sprintf("choose a date within the next %d days", m.horizonDays)), nil
	}
	times, err := m.times(ctx, sess.Draft.ServiceID, date)
	if err != nil {
		return Reply{}, err
	}
	if len(times) == 0 {
		return m.render(ctx, sess, "no free time on this date"), nil
	}
	sess.Draft.Date = date.String()
	sess.Go(StateChooseTime)
	return m.render(ctx, sess, ""), nil
}

func (m *Machine) chooseTime(ctx context.Context, sess *Session, text string) (Reply, error) {
	date, err := calendar.ParseDate(sess.Draft.Date)
	if err != nil {
		return Reply{}, errs.Wrap(err, "session date")
	}
	times, err := m.times(ctx, sess.Draft.ServiceID, date)
	if err != nil {
		return Reply{}, err
	}
	for _, t := range times {
		if t == text {
			sess.Draft.Time = t
			sess.Go(StateEnterName)
			return m.render(ctx, sess, ""), nil
		}
	}
	return m.render(ctx, sess, "choose one of the offered times"), nil
}

func (m *Machine) enterName(ctx context.Context, sess *Session, text string) Reply {
	name, err := client.NewName(text)
	if err != nil {
		return m.render(ctx, sess, fmt.Sprintf("a name needs %d to %d characters", client.MinNameLength, client.MaxNameLength))
	}
	sess.Draft.Name = name.String()
	sess.Go(StateEnterPhone)
	return m.render(ctx, sess, "")
}

func (m *Machine) enterPhone(ctx context.Context, sess *Session, userID, text string) (Reply, error) {
	phone, err := client.NewPhone(text)
	if err != nil {
		return m.render(ctx, sess, "send a phone number with 10 or 11 digits"), nil
	}
	sess.Draft.Phone = phone.String()

	hold, err := m.commands.Hold(ctx, reqdto.HoldRequest{
		ServiceID: sess.Draft.ServiceID,
		Date:      sess.Draft.Date,
		Time:      sess.Draft.Time,
		Name:      sess.Draft.Name,
		Phone:     sess.Draft.Phone,
	}, userID)
	switch {
	case err == nil:
		sess.Draft.ReservationID = hold.ID
		sess.Go(StateAwaitingPayment)
		reply := m.render(ctx, sess, "")
		reply.Hold = hold
		return reply, nil
	case errs.Is(err, errs.ErrSlotUnavailable):
		sess.Draft.Time = ""
		sess.Rewind(StateChooseTime)
		return m.render(ctx, sess, "that time was just taken, choose another"), nil
	case errs.Is(err, errs.ErrInvalidInput):
		return m.render(ctx, sess, "the booking details are not valid, start over with reset"), nil
	default:
		return Reply{}, err
	}
}

func (m *Machine) awaitPayment(ctx context.Context, sess *Session, text string) (Reply, error) {
	switch strings.ToLower(text) {
	case InputPaid:
		appt, err := m.commands.Confirm(ctx, sess.Draft.ReservationID)
		switch {
		case err == nil:
			sess.Reset()
			return Reply{State: StateIdle, Prompt: "Payment received, see you soon.", Appointment: appt}, nil
		case errs.Is(err, errs.ErrSlotNoLongerAvailable), errs.Is(err, errs.ErrReservationNotFound):
			sess.Draft.ReservationID = ""
			sess.Draft.Time = ""
			sess.Rewind(StateChooseTime)
			return m.render(ctx, sess, "the reservation lapsed or the time was taken, choose another time"), nil
		default:
			return Reply{}, err
		}
	case InputCancel:
		m.abandon(ctx, sess)
		return Reply{State: StateIdle, Prompt: "Reservation cancelled."}, nil
	default:
		return m.render(ctx, sess, "reply paid once the payment is done, or cancel"), nil
	}
}

// release discards the session's hold, if any.
func (m *Machine) release(ctx context.Context, sess *Session) {
	if sess.Draft.ReservationID == "" {
		return
	}
	m.commands.Discard(ctx, sess.Draft.ReservationID)
	sess.Draft.ReservationID = ""
}

func (m *Machine) abandon(ctx context.Context, sess *Session) {
	m.release(ctx, sess)
	sess.Reset()
}

func (m *Machine) today() calendar.Date {
	return calendar.DateOf(m.clock.Now().In(m.location))
}

// times lists free start times on date; for today only those still ahead.
func (m *Machine) times(ctx context.Context, serviceID string, date calendar.Date) ([]string, error) {
	free, err := m.queries.FreeSlots(ctx, serviceID, date.String())
	if err != nil {
		return nil, err
	}
	if date != m.today() {
		return free.Slots, nil
	}
	now := m.clock.Now().In(m.location)
	current, _ := calendar.NewTimeOfDay(now.Hour(), now.Minute())
	out := make([]string, 0, len(free.Slots))
	for _, s := range free.Slots {
		t, err := calendar.ParseTimeOfDay(s)
		if err != nil || t <= current {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *Machine) render(ctx context.Context, sess *Session, problem string) Reply {
	reply := Reply{State: sess.State, Error: problem}
	switch sess.State {
	case StateChooseService:
		reply.Prompt = "Choose a service."
		for _, svc := range m.queries.ListServices(ctx) {
			reply.Options = append(reply.Options, svc.ID)
		}
	case StateChooseDate:
		reply.Prompt = "Choose a date."
		today := m.today()
		for i := 0; i < m.horizonDays; i++ {
			reply.Options = append(reply.Options, today.AddDays(i).String())
		}
	case StateChooseTime:
		reply.Prompt = fmt.Sprintf("Choose a time on %s.", sess.Draft.Date)
		if date, err := calendar.ParseDate(sess.Draft.Date); err == nil {
			times, err := m.times(ctx, sess.Draft.ServiceID, date)
			if err != nil {
				m.logger.WarnContext(ctx, "listing free times failed", "error", err)
			}
			reply.Options = times
		}
	case StateEnterName:
		reply.Prompt = "What is your name?"
		reply.Options = m.remembered(ctx, sess, func(p *readmodel.ClientRM) string { return p.Name })
	case StateEnterPhone:
		reply.Prompt = "What is your phone number?"
		reply.Options = m.remembered(ctx, sess, func(p *readmodel.ClientRM) string { return p.Phone })
	case StateAwaitingPayment:
		reply.Prompt = "Your time is held. Pay and reply paid, or cancel."
		reply.Options = []string{InputPaid, InputCancel}
	case StateIdle:
		reply.Prompt = "Send start to book an appointment."
	}
	return reply
}

// remembered offers the value stored from the user's last booking, if any.
func (m *Machine) remembered(ctx context.Context, sess *Session, pick func(*readmodel.ClientRM) string) []string {
	p, err := m.queries.Profile(ctx, sess.userID)
	if err != nil {
		return nil
	}
	return []string{pick(p)}
}
