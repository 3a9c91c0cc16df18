package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/tonyprice/nhldata/internal/service"
)

type Scheduler struct {
	s            gocron.Scheduler
	statsService *service.StatsService
	sendMessage  func(string) error
}

func NewScheduler(statsService *service.StatsService, sendMessage func(string) error) (*Scheduler, error) {
	location, err := time.LoadLocation("America/New_York") // league time
	if err != nil {
		slog.Error("Failed to load location", "error", err)
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:            s,
		statsService: statsService,
		sendMessage:  sendMessage,
	}, nil
}

func (s *Scheduler) Start() error {
	var err error

	// Last night's scores - every morning 9:00 ET
	_, err = s.s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(9, 0, 0))),
		gocron.NewTask(s.sendScores),
	)
	if err != nil {
		return fmt.Errorf("failed to create scores job: %w", err)
	}

	// Standings - Monday 9:30 ET
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Monday), gocron.NewAtTimes(gocron.NewAtTime(9, 30, 0))),
		gocron.NewTask(s.sendStandings),
	)
	if err != nil {
		return fmt.Errorf("failed to create standings job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) sendScores() {
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	scores, err := s.statsService.GetScores(yesterday)
	if err != nil {
		slog.Error("Failed to get scores", "error", err)
		return
	}
	if err := s.sendMessage(scores); err != nil {
		slog.Error("Failed to send scores", "error", err)
	}
}

func (s *Scheduler) sendStandings() {
	standings, err := s.statsService.GetStandings()
	if err != nil {
		slog.Error("Failed to get standings", "error", err)
		return
	}
	if err := s.sendMessage(standings); err != nil {
		slog.Error("Failed to send standings", "error", err)
	}
}
