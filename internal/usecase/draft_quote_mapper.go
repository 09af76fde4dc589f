package usecase

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"freight_quote/internal/domain/entities"

	"github.com/google/uuid"
)

const (
	DraftFormVersion = "1.0"

	// isoTimestampLayout renders millisecond UTC timestamps ("2025-01-31T00:00:00.000Z").
	isoTimestampLayout = "2006-01-02T15:04:05.000Z"

	defaultHaulageMode = "TRUCK"
	defaultHaulageLeg  = "ON_CARRIAGE"
)

var resumeTokenPattern = regexp.MustCompile(`^resume_\d+_[a-z0-9]+$`)

var haulageModes = map[entities.HaulageMode]string{
	entities.HaulageModeTruck: "TRUCK",
	entities.HaulageModeRail:  "RAIL",
	entities.HaulageModeBarge: "BARGE",
}

var haulageLegs = map[entities.HaulageLeg]string{
	entities.HaulageLegPre:  "PRE_CARRIAGE",
	entities.HaulageLegOn:   "ON_CARRIAGE",
	entities.HaulageLegPost: "POST_CARRIAGE",
}

// ToDraftQuotePayload maps the wizard form into the backend draft shape. It never
// fails: unknown enum values fall back to TRUCK / ON_CARRIAGE and a departure
// date that does not parse is passed through unchanged.
func ToDraftQuotePayload(form entities.DraftQuoteForm, resumeToken string, now time.Time) entities.CreateDraftQuoteRequest {
	stamp := now.UTC().Format(isoTimestampLayout)
	b := form.Basics

	options := make([]entities.DraftOptionPayload, 0, len(form.ExistingOptions))
	for _, opt := range form.ExistingOptions {
		options = append(options, entities.DraftOptionPayload{
			ID:          opt.ID,
			Name:        opt.Name,
			Description: opt.Description,
			Seafreights: seafreightPayloads(opt.Seafreights),
			Haulages:    haulagePayloads(opt.Haulages),
			Services:    servicePayloads(opt.Services),
			Totals:      totalsPayload(opt.Totals),
		})
	}

	attachments := make([]entities.AttachmentPayload, 0, len(form.Attachments))
	for _, a := range form.Attachments {
		attachments = append(attachments, entities.AttachmentPayload{Name: a.Name, URL: a.URL})
	}

	return entities.CreateDraftQuoteRequest{
		ResumeToken:        resumeToken,
		FormVersion:        DraftFormVersion,
		CargoType:          string(b.CargoType),
		Incoterm:           strings.ToUpper(strings.TrimSpace(b.Incoterm)),
		Origin:             entities.LocationPayload{City: b.Origin.City, Country: b.Origin.Country},
		Destination:        entities.LocationPayload{City: b.Destination.City, Country: b.Destination.Country},
		RequestedDeparture: toISOTimestamp(b.RequestedDeparture),
		GoodsDescription:   b.GoodsDescription,
		ClientNumber:       b.ClientNumber,
		CustomerName:       b.CustomerName,
		AssigneeID:         b.AssigneeID,
		PortOfLoading:      b.PortOfLoading,
		PortOfDischarge:    b.PortOfDischarge,
		ContainerType:      b.ContainerType,
		ContainerCount:     b.ContainerCount,
		Options:            options,
		CurrentOption: entities.DraftOptionPayload{
			Seafreights: seafreightPayloads(form.CurrentOption.Seafreights),
			Haulages:    haulagePayloads(form.CurrentOption.Haulages),
			Services:    servicePayloads(form.CurrentOption.Services),
			Totals:      totalsPayload(form.CurrentOption.Totals),
		},
		Attachments: attachments,
		CreatedAt:   stamp,
		UpdatedAt:   stamp,
	}
}

func seafreightPayloads(lines []entities.SeafreightLine) []entities.SeafreightPayload {
	out := make([]entities.SeafreightPayload, 0, len(lines))
	for _, l := range lines {
		out = append(out, entities.SeafreightPayload{
			ID:            lineID(l.ID),
			Carrier:       l.Carrier,
			ContainerType: l.ContainerType,
			Rate:          l.Rate,
			Currency:      strings.ToUpper(l.Currency),
			TransitDays:   l.TransitDays,
			ValidUntil:    toISOTimestamp(l.ValidUntil),
		})
	}
	return out
}

func haulagePayloads(lines []entities.HaulageLine) []entities.HaulagePayload {
	out := make([]entities.HaulagePayload, 0, len(lines))
	for _, l := range lines {
		out = append(out, entities.HaulagePayload{
			ID:         lineID(l.ID),
			Haulier:    l.Haulier,
			Mode:       haulageModeCode(l.Mode),
			Leg:        haulageLegCode(l.Leg),
			Rate:       l.Rate,
			Currency:   strings.ToUpper(l.Currency),
			ValidUntil: toISOTimestamp(l.ValidUntil),
		})
	}
	return out
}

func servicePayloads(lines []entities.ServiceLine) []entities.ServicePayload {
	out := make([]entities.ServicePayload, 0, len(lines))
	for _, l := range lines {
		out = append(out, entities.ServicePayload{
			ID:       lineID(l.ID),
			Name:     l.Name,
			Price:    l.Price,
			Quantity: l.Quantity,
			Currency: strings.ToUpper(l.Currency),
		})
	}
	return out
}

func totalsPayload(t *entities.OptionTotalsDraft) *entities.OptionTotalsPayload {
	if t == nil {
		return nil
	}
	return &entities.OptionTotalsPayload{
		Seafreight: t.Seafreight,
		Haulage:    t.Haulage,
		Services:   t.Services,
		Grand:      t.Grand,
	}
}

func haulageModeCode(m entities.HaulageMode) string {
	if code, ok := haulageModes[entities.HaulageMode(strings.ToLower(string(m)))]; ok {
		return code
	}
	return defaultHaulageMode
}

func haulageLegCode(l entities.HaulageLeg) string {
	if code, ok := haulageLegs[entities.HaulageLeg(strings.ToLower(string(l)))]; ok {
		return code
	}
	return defaultHaulageLeg
}

// lineID keeps the id assigned by the wizard and mints one for lines that have none.
func lineID(id string) string {
	if strings.TrimSpace(id) != "" {
		return id
	}
	return uuid.NewString()
}

func toISOTimestamp(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	t, ok := parseISODate(s)
	if !ok {
		return s
	}
	return t.UTC().Format(isoTimestampLayout)
}

// CreateResumeToken returns "resume_<unix ms>_<base36 random>".
func CreateResumeToken() string {
	return createResumeToken(time.Now())
}

func createResumeToken(now time.Time) string {
	id := uuid.New()
	var n uint64
	for _, b := range id[8:] {
		n = n<<8 | uint64(b)
	}
	suffix := strconv.FormatUint(n, 36)
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return "resume_" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + suffix
}
