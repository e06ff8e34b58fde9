package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
)

type ResyncInput struct {
	// Seasons narrows standings tasks; empty means every configured season.
	Seasons    []string
	SyncData   []string
	MaxWorkers int
}

type ResyncResult struct {
	TaskCount     int                `json:"task_count"`
	SuccessCount  int                `json:"success_count"`
	FailedCount   int                `json:"failed_count"`
	SkippedCount  int                `json:"skipped_count"`
	WorkerCount   int                `json:"worker_count"`
	Tasks         []ResyncTaskResult `json:"tasks"`
	RequestedData []string           `json:"requested_data"`
}

type ResyncTaskResult struct {
	SyncData   string `json:"sync_data"`
	Season     string `json:"season,omitempty"`
	Status     string `json:"status"`
	Records    int    `json:"records"`
	Inserted   int    `json:"inserted"`
	Updated    int    `json:"updated"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

type resyncDataKind string

const (
	resyncStatusSuccess = "success"
	resyncStatusFailed  = "failed"
	resyncStatusSkipped = "skipped"

	resyncDataStandings resyncDataKind = "standings"
	resyncDataPlayers   resyncDataKind = "players"
)

type resyncTask struct {
	kind   resyncDataKind
	season string
}

// Resync re-runs the ingest pipeline for the requested feeds across the
// configured seasons, fanning tasks out over a bounded worker pool.
func (s *FeedSyncService) Resync(ctx context.Context, input ResyncInput) (ResyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedSyncService.Resync")
	defer span.End()

	if s.client == nil {
		return ResyncResult{}, fmt.Errorf("%w: feed sync is not fully configured", ErrDependencyUnavailable)
	}

	kinds, rawKinds, err := normalizeResyncKinds(input.SyncData)
	if err != nil {
		return ResyncResult{}, err
	}
	seasons, err := s.resolveResyncSeasons(input.Seasons)
	if err != nil {
		return ResyncResult{}, err
	}

	tasks := make([]resyncTask, 0, len(seasons)+1)
	for _, kind := range kinds {
		switch kind {
		case resyncDataStandings:
			for _, season := range seasons {
				tasks = append(tasks, resyncTask{kind: kind, season: season})
			}
		case resyncDataPlayers:
			tasks = append(tasks, resyncTask{kind: kind})
		}
	}

	workerCount := normalizeResyncWorkerCount(input.MaxWorkers, s.maxWorkers, len(tasks))
	result := ResyncResult{
		TaskCount:     len(tasks),
		WorkerCount:   workerCount,
		RequestedData: rawKinds,
		Tasks:         make([]ResyncTaskResult, 0, len(tasks)),
	}
	if len(tasks) == 0 {
		return result, nil
	}

	results := make(chan ResyncTaskResult, len(tasks))

	var successCount atomic.Int32
	var failedCount atomic.Int32
	var skippedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return ResyncResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := ResyncTaskResult{
				SyncData: string(task.kind),
				Season:   task.season,
			}

			sync, status, message := s.runResyncTask(ctx, task)
			row.Records = sync.Records
			row.Inserted = sync.Inserted
			row.Updated = sync.Updated
			row.Status = status
			row.Message = message
			row.DurationMs = time.Since(start).Milliseconds()

			switch status {
			case resyncStatusSuccess:
				successCount.Add(1)
			case resyncStatusSkipped:
				skippedCount.Add(1)
			default:
				failedCount.Add(1)
			}

			results <- row
		}); err != nil {
			workers.Done()
			return ResyncResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}

	sort.SliceStable(result.Tasks, func(i, j int) bool {
		if result.Tasks[i].SyncData != result.Tasks[j].SyncData {
			return result.Tasks[i].SyncData < result.Tasks[j].SyncData
		}
		return result.Tasks[i].Season < result.Tasks[j].Season
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.SkippedCount = int(skippedCount.Load())
	return result, nil
}

func (s *FeedSyncService) runResyncTask(ctx context.Context, task resyncTask) (SyncResult, string, string) {
	switch task.kind {
	case resyncDataStandings:
		sync, err := s.SyncStandings(ctx, task.season)
		if err != nil {
			return SyncResult{}, resyncStatusFailed, err.Error()
		}
		if sync.Records == 0 {
			return sync, resyncStatusSkipped, "feed returned no standings rows"
		}
		return sync, resyncStatusSuccess, ""
	case resyncDataPlayers:
		sync, err := s.SyncPlayers(ctx)
		if err != nil {
			return SyncResult{}, resyncStatusFailed, err.Error()
		}
		if sync.Records == 0 {
			return sync, resyncStatusSkipped, "feed returned no player rows"
		}
		return sync, resyncStatusSuccess, ""
	default:
		return SyncResult{}, resyncStatusSkipped, "unsupported sync_data"
	}
}

func (s *FeedSyncService) resolveResyncSeasons(requested []string) ([]string, error) {
	seasons := requested
	if len(seasons) == 0 {
		seasons = s.seasons
	}

	seen := make(map[string]struct{}, len(seasons))
	out := make([]string, 0, len(seasons))
	for _, season := range seasons {
		season = strings.TrimSpace(season)
		if season == "" {
			continue
		}
		if err := ValidateSeasonKey(season); err != nil {
			return nil, err
		}
		if _, exists := seen[season]; exists {
			continue
		}
		seen[season] = struct{}{}
		out = append(out, season)
	}

	sort.Strings(out)
	return out, nil
}

func normalizeResyncKinds(raw []string) ([]resyncDataKind, []string, error) {
	if len(raw) == 0 {
		return nil, nil, fmt.Errorf("%w: sync_data is required", ErrInvalidInput)
	}

	seen := make(map[resyncDataKind]struct{}, len(raw))
	kinds := make([]resyncDataKind, 0, len(raw))
	requested := make([]string, 0, len(raw))
	for _, item := range raw {
		normalized := strings.TrimSpace(strings.ToLower(item))
		if normalized == "" {
			continue
		}
		kind, ok := toResyncDataKind(normalized)
		if !ok {
			return nil, nil, fmt.Errorf("%w: unsupported sync_data=%s", ErrInvalidInput, item)
		}
		if _, exists := seen[kind]; exists {
			continue
		}
		seen[kind] = struct{}{}
		kinds = append(kinds, kind)
		requested = append(requested, string(kind))
	}
	if len(kinds) == 0 {
		return nil, nil, fmt.Errorf("%w: sync_data is required", ErrInvalidInput)
	}
	return kinds, requested, nil
}

func toResyncDataKind(value string) (resyncDataKind, bool) {
	switch value {
	case "standings", "standing":
		return resyncDataStandings, true
	case "players", "player":
		return resyncDataPlayers, true
	default:
		return "", false
	}
}

func normalizeResyncWorkerCount(value int, configuredMax int, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 1
	}
	if configuredMax <= 0 {
		configuredMax = 2
	}
	if value > configuredMax {
		value = configuredMax
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
