package shkolo

import (
	"context"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
)

const (
	baseURL      = "https://app.shkolo.bg"
	loginTimeout = 15 * time.Second
	pageTimeout  = 15 * time.Second
)

// LoginInfo carries the portal credentials.
type LoginInfo struct {
	Username string
	Password string
}

// DiaryInfo identifies whose schedule the diary endpoint serves.
type DiaryInfo struct {
	PupilID     string
	ClassYearID string
	SchoolYear  string
}

// Shkolo is an authenticated portal session backed by a headless browser.
// The portal renders its schedule client side, so plain HTTP requests come
// back empty; all fetching goes through the browser context.
type Shkolo struct {
	ctx    context.Context
	cancel context.CancelFunc
	diary  DiaryInfo
	logger *log.Logger
}

// New launches a headless browser and logs into the portal. A failed login
// is fatal to the whole run: the caller gets an error before any parsing
// starts.
func New(parent context.Context, login LoginInfo, diary DiaryInfo) (*Shkolo, error) {
	ctx, cancel := chromedp.NewContext(parent)

	loginCtx, loginCancel := context.WithTimeout(ctx, loginTimeout)
	defer loginCancel()

	var onDashboard bool
	err := chromedp.Run(loginCtx,
		chromedp.Navigate(baseURL),
		chromedp.WaitVisible("#login-username", chromedp.ByID),
		chromedp.SendKeys("#login-username", login.Username, chromedp.ByID),
		chromedp.SendKeys("#passwordField", login.Password+kb.Enter, chromedp.ByID),
		chromedp.Poll(`window.location.href.includes("/dashboard")`, &onDashboard),
	)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("could not log in to the portal: %w", err)
	}

	return &Shkolo{
		ctx:    ctx,
		cancel: cancel,
		diary:  diary,
		logger: log.New(os.Stdout, "shkolo ", log.LstdFlags),
	}, nil
}

// Close shuts the browser session down.
func (s *Shkolo) Close() {
	s.cancel()
}

// GetWeek fetches the schedule page for one ISO week and flattens it into
// schedule text lines.
func (s *Shkolo) GetWeek(week int) ([]string, error) {
	url := fmt.Sprintf("%s/ajax/diary/getScheduleForClass?pupilx_id=%s&year=%s&week=%d&class_year_id=%s",
		baseURL, s.diary.PupilID, s.diary.SchoolYear, week, s.diary.ClassYearID)

	fetchCtx, cancel := context.WithTimeout(s.ctx, pageTimeout)
	defer cancel()

	var html string
	err := chromedp.Run(fetchCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("could not fetch week %d: %w", week, err)
	}
	return ScheduleLines(html)
}

// GetScheduleWeeks fetches weekCount weeks starting at the current ISO week
// and concatenates their schedule text. A week that fails to load is logged
// and skipped.
func (s *Shkolo) GetScheduleWeeks(weekCount int) ([]string, error) {
	_, week := time.Now().ISOWeek()
	var lines []string
	for i := 0; i < weekCount; i++ {
		weekLines, err := s.GetWeek(week + i)
		if err != nil {
			s.logger.Printf("Could not read week %v: %v\n", week+i, err)
			continue
		}
		lines = append(lines, weekLines...)
	}
	return lines, nil
}

var (
	dateRe         = regexp.MustCompile(`\d{2}\.\d{2}\.\d{4}`)
	timeRangeRe    = regexp.MustCompile(`\d{2}:\d{2} - \d{2}:\d{2}`)
	trailingTimeRe = regexp.MustCompile(` \d{2}:\d{2} - \d{2}:\d{2}$`)
)

// defaultTimeRange stands in for body rows the portal renders without an
// explicit time pair, typically vacation notices spanning the school day.
const defaultTimeRange = "08:00 - 13:55"

// ScheduleLines flattens a schedule-table HTML snapshot into the
// line-oriented text the parsing pipeline consumes: one "Date:" line per
// table column followed by "Class:"/"Time range:" pairs per slot. A column
// heading with no date yields "Date: None", which the parser reads as a
// vacation block. The portal renders each slot twice, so consecutive rows
// starting with the same character collapse into one.
func ScheduleLines(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	table := doc.Find(".scheduleTable").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no schedule table in page")
	}

	var lines []string
	var prevFirst rune
	table.Find(".scheduleTableColumn").Each(func(_ int, col *goquery.Selection) {
		date := dateRe.FindString(col.Find(".scheduleTableHeading").Text())
		if date == "" {
			date = "None"
		}
		lines = append(lines, "Date: "+date)

		body := col.Find(".scheduleTableBody").Text()
		for _, row := range strings.Split(body, "\n") {
			row = strings.TrimSpace(row)
			if row == "" {
				continue
			}
			first := []rune(row)[0]
			if first == prevFirst {
				continue
			}
			timeRange := timeRangeRe.FindString(row)
			if timeRange == "" {
				timeRange = defaultTimeRange
			}
			classInfo := strings.TrimSpace(trailingTimeRe.ReplaceAllString(row, ""))
			lines = append(lines, "Class: "+classInfo, "Time range: "+timeRange)
			prevFirst = first
		}
	})
	return lines, nil
}
