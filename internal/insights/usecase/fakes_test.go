package usecase

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	accountRepository "metaads-srv/internal/account/repository"
	"metaads-srv/internal/insights"
	"metaads-srv/internal/insights/repository"
	"metaads-srv/internal/model"
	"metaads-srv/pkg/metaads"
	"metaads-srv/pkg/minio"
)

type fakeInsightsRepo struct {
	mu sync.Mutex

	runs map[string]*model.SyncRun

	sliceCount    int64
	sliceCountErr error

	loadErr     error
	loadCalls   []repository.LoadInsightsOptions
	loadedRows  []model.AdInsight
	lastReplace bool
}

func newFakeInsightsRepo() *fakeInsightsRepo {
	return &fakeInsightsRepo{runs: make(map[string]*model.SyncRun)}
}

func (f *fakeInsightsRepo) CreateSyncRun(_ context.Context, opts repository.CreateSyncRunOptions) (*model.SyncRun, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	run := &model.SyncRun{
		ID:        fmt.Sprintf("run-%d", len(f.runs)+1),
		AccountID: opts.AccountID,
		Since:     opts.Since,
		Until:     opts.Until,
		Fields:    opts.Fields,
		Mode:      opts.Mode,
		Status:    model.SyncStatusQueued,
		CreatedAt: time.Now(),
	}
	f.runs[run.ID] = run
	return run, nil
}

func (f *fakeInsightsRepo) GetSyncRunByID(_ context.Context, id string) (*model.SyncRun, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	run, ok := f.runs[id]
	if !ok {
		return nil, repository.ErrRunNotFound
	}
	cp := *run
	return &cp, nil
}

func (f *fakeInsightsRepo) MarkSyncRunRunning(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	run, ok := f.runs[id]
	if !ok || run.Status != model.SyncStatusQueued {
		return repository.ErrRunNotFound
	}
	run.Status = model.SyncStatusRunning
	now := time.Now()
	run.StartedAt = &now
	return nil
}

func (f *fakeInsightsRepo) MarkSyncRunCompleted(_ context.Context, opts repository.CompleteSyncRunOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	run, ok := f.runs[opts.RunID]
	if !ok {
		return repository.ErrRunNotFound
	}
	run.Status = model.SyncStatusCompleted
	run.RowsLoaded = opts.RowsLoaded
	run.PagesFetched = opts.PagesFetched
	run.DurationMs = opts.DurationMs
	run.ArchivePrefix = opts.ArchivePrefix
	run.CompletedAt = &opts.CompletedAt
	return nil
}

func (f *fakeInsightsRepo) MarkSyncRunFailed(_ context.Context, opts repository.FailSyncRunOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	run, ok := f.runs[opts.RunID]
	if !ok {
		return repository.ErrRunNotFound
	}
	run.Status = model.SyncStatusFailed
	run.ErrorMessage = opts.ErrorMessage
	run.CompletedAt = &opts.CompletedAt
	return nil
}

func (f *fakeInsightsRepo) ListSyncRuns(_ context.Context, opts repository.ListSyncRunsOptions) ([]model.SyncRun, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.SyncRun, 0, len(f.runs))
	for _, run := range f.runs {
		if opts.AccountID != "" && run.AccountID != opts.AccountID {
			continue
		}
		if opts.Status != "" && run.Status != opts.Status {
			continue
		}
		out = append(out, *run)
	}
	return out, int64(len(out)), nil
}

func (f *fakeInsightsRepo) GetLatestCompletedRun(_ context.Context, accountID string) (*model.SyncRun, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var latest *model.SyncRun
	for _, run := range f.runs {
		if run.AccountID != accountID || run.Status != model.SyncStatusCompleted {
			continue
		}
		if latest == nil || (run.CompletedAt != nil && latest.CompletedAt != nil && run.CompletedAt.After(*latest.CompletedAt)) {
			latest = run
		}
	}
	if latest == nil {
		return nil, repository.ErrRunNotFound
	}
	cp := *latest
	return &cp, nil
}

func (f *fakeInsightsRepo) CountInsights(_ context.Context, _ repository.SliceOptions) (int64, error) {
	return f.sliceCount, f.sliceCountErr
}

func (f *fakeInsightsRepo) LoadInsights(_ context.Context, opts repository.LoadInsightsOptions) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loadCalls = append(f.loadCalls, opts)
	if f.loadErr != nil {
		return 0, f.loadErr
	}
	f.lastReplace = opts.Replace
	if opts.Replace {
		f.loadedRows = f.loadedRows[:0]
	}
	f.loadedRows = append(f.loadedRows, opts.Rows...)
	return len(opts.Rows), nil
}

func (f *fakeInsightsRepo) ListInsights(_ context.Context, _ repository.ListInsightsOptions) ([]model.AdInsight, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loadedRows, int64(len(f.loadedRows)), nil
}

func listAllRuns() repository.ListSyncRunsOptions {
	return repository.ListSyncRunsOptions{}
}

type fakeCache struct {
	mu sync.Mutex

	locks      map[string]bool
	acquireErr error
	latest     map[string]*model.SyncRun
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		locks:  make(map[string]bool),
		latest: make(map[string]*model.SyncRun),
	}
}

func (f *fakeCache) lockKey(accountID, since, until string) string {
	return accountID + ":" + since + ":" + until
}

func (f *fakeCache) AcquireSyncLock(_ context.Context, accountID, since, until string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.acquireErr != nil {
		return false, f.acquireErr
	}
	key := f.lockKey(accountID, since, until)
	if f.locks[key] {
		return false, nil
	}
	f.locks[key] = true
	return true, nil
}

func (f *fakeCache) ReleaseSyncLock(_ context.Context, accountID, since, until string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.locks, f.lockKey(accountID, since, until))
	return nil
}

func (f *fakeCache) SetLatestRun(_ context.Context, accountID string, run *model.SyncRun) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.latest[accountID] = run
	return nil
}

func (f *fakeCache) GetLatestRun(_ context.Context, accountID string) (*model.SyncRun, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest[accountID], nil
}

func (f *fakeCache) held(accountID, since, until string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.locks[f.lockKey(accountID, since, until)]
}

type fakeAccounts struct {
	accounts map[string]*model.AdAccount
}

func newFakeAccounts(ids ...string) *fakeAccounts {
	f := &fakeAccounts{accounts: make(map[string]*model.AdAccount)}
	for _, id := range ids {
		f.accounts[id] = &model.AdAccount{
			ID:          "id-" + id,
			AccountID:   id,
			Name:        id,
			AccessToken: "token-" + id,
		}
	}
	return f
}

func (f *fakeAccounts) CreateAccount(_ context.Context, _ accountRepository.CreateAccountOptions) (*model.AdAccount, error) {
	return nil, nil
}

func (f *fakeAccounts) GetAccountByID(_ context.Context, _ string) (*model.AdAccount, error) {
	return nil, accountRepository.ErrAccountNotFound
}

func (f *fakeAccounts) GetAccountByAccountID(_ context.Context, accountID string) (*model.AdAccount, error) {
	if acc, ok := f.accounts[accountID]; ok {
		return acc, nil
	}
	return nil, accountRepository.ErrAccountNotFound
}

func (f *fakeAccounts) ListAccounts(_ context.Context, _ accountRepository.ListAccountsOptions) ([]model.AdAccount, int64, error) {
	return nil, 0, nil
}

type fakeGraph struct {
	pages []*metaads.InsightsPage
	err   error
	calls []metaads.GetInsightsInput
}

func (f *fakeGraph) BaseURL() string { return "https://graph.facebook.com/v20.0" }

func (f *fakeGraph) GetInsights(_ context.Context, input metaads.GetInsightsInput) (*metaads.InsightsPage, error) {
	f.calls = append(f.calls, input)
	if f.err != nil {
		return nil, f.err
	}
	idx := len(f.calls) - 1
	if idx >= len(f.pages) {
		return &metaads.InsightsPage{}, nil
	}
	return f.pages[idx], nil
}

type fakeMinio struct {
	mu      sync.Mutex
	objects map[string][]byte
	err     error
}

func newFakeMinio() *fakeMinio {
	return &fakeMinio{objects: make(map[string][]byte)}
}

func (f *fakeMinio) Connect(_ context.Context) error                 { return nil }
func (f *fakeMinio) ConnectWithRetry(_ context.Context, _ int) error { return nil }
func (f *fakeMinio) HealthCheck(_ context.Context) error             { return nil }
func (f *fakeMinio) Close() error                                    { return nil }
func (f *fakeMinio) EnsureBucket(_ context.Context, _ string) error  { return nil }

func (f *fakeMinio) Upload(_ context.Context, bucket, key string, reader io.Reader, _ int64, _ string) (*minio.ObjectInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	f.objects[bucket+"/"+key] = data
	return &minio.ObjectInfo{Bucket: bucket, Key: key, Size: int64(len(data))}, nil
}

func (f *fakeMinio) PresignedGetURL(_ context.Context, _, _ string, _ time.Duration) (string, error) {
	return "", nil
}

type fakeJobs struct {
	jobs []insights.SyncJob
	err  error
}

func (f *fakeJobs) EnqueueSyncJob(_ context.Context, job insights.SyncJob) error {
	if f.err != nil {
		return f.err
	}
	f.jobs = append(f.jobs, job)
	return nil
}

type fakeProducer struct {
	completed []insights.SyncEvent
	failed    []insights.SyncEvent
}

func (f *fakeProducer) PublishSyncCompleted(_ context.Context, event insights.SyncEvent) error {
	f.completed = append(f.completed, event)
	return nil
}

func (f *fakeProducer) PublishSyncFailed(_ context.Context, event insights.SyncEvent) error {
	f.failed = append(f.failed, event)
	return nil
}
