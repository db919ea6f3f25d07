package payroll

import (
	"context"
	"errors"
	"testing"
)

type fakeStore struct {
	batch      BatchInfo
	batchErr   error
	lines      []TimesheetLine
	runs       map[string]Run
	items      map[string][]EmployeeTotal
	nextRunID  string
	deletedFor []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		runs:      map[string]Run{},
		items:     map[string][]EmployeeTotal{},
		nextRunID: "run-1",
	}
}

func (f *fakeStore) GetBatch(ctx context.Context, batchID string) (BatchInfo, error) {
	if f.batchErr != nil {
		return BatchInfo{}, f.batchErr
	}
	return f.batch, nil
}

func (f *fakeStore) ListBatchLines(ctx context.Context, batchID string) ([]TimesheetLine, error) {
	return f.lines, nil
}

func (f *fakeStore) FindRunIDByBatch(ctx context.Context, batchID string) (string, error) {
	for id, run := range f.runs {
		if run.BatchID == batchID {
			return id, nil
		}
	}
	return "", nil
}

func (f *fakeStore) CreateRun(ctx context.Context, batchID, currency string) (string, error) {
	id := f.nextRunID
	f.runs[id] = Run{ID: id, BatchID: batchID, Status: RunStatusPending, Currency: currency}
	return id, nil
}

func (f *fakeStore) DeleteRunItems(ctx context.Context, runID string) error {
	f.deletedFor = append(f.deletedFor, runID)
	delete(f.items, runID)
	return nil
}

func (f *fakeStore) InsertRunItems(ctx context.Context, runID string, totals []EmployeeTotal) error {
	f.items[runID] = append(f.items[runID], totals...)
	return nil
}

func (f *fakeStore) SaveRunResults(ctx context.Context, runID string, summary RunSummary) error {
	run := f.runs[runID]
	run.Status = RunStatusProcessed
	run.TotalCost = summary.TotalCost
	run.TotalSale = summary.TotalSale
	run.EmployeeCount = summary.EmployeeCount
	run.SkippedLines = summary.SkippedLines
	f.runs[runID] = run
	return nil
}

func (f *fakeStore) GetRun(ctx context.Context, runID string) (Run, error) {
	run, ok := f.runs[runID]
	if !ok {
		return Run{}, ErrRunNotFound
	}
	return run, nil
}

func (f *fakeStore) CountRuns(ctx context.Context) (int, error) {
	return len(f.runs), nil
}

func (f *fakeStore) ListRuns(ctx context.Context, limit, offset int) ([]Run, error) {
	var runs []Run
	for _, run := range f.runs {
		runs = append(runs, run)
	}
	return runs, nil
}

func (f *fakeStore) ListRunItems(ctx context.Context, runID string) ([]EmployeeTotal, error) {
	return f.items[runID], nil
}

func (f *fakeStore) UpdateRunStatus(ctx context.Context, runID, status string) error {
	run := f.runs[runID]
	run.Status = status
	f.runs[runID] = run
	return nil
}

type fakeMasterData struct {
	snapshot Snapshot
	err      error
}

func (f *fakeMasterData) Snapshot(ctx context.Context, projectID, contractID string) (Snapshot, error) {
	if f.err != nil {
		return Snapshot{}, f.err
	}
	return f.snapshot, nil
}

func testSnapshot() Snapshot {
	return Snapshot{
		WorkMode:    WorkModeOnshore,
		Contract:    testContract,
		Positions:   map[string]Position{"pos-1": testPosition},
		Assignments: map[string]string{"emp-1": "pos-1"},
	}
}

func TestGenerateRunRequiresApprovedBatch(t *testing.T) {
	store := newFakeStore()
	store.batch = BatchInfo{ID: "batch-1", Status: "draft"}
	service := NewService(store, &fakeMasterData{snapshot: testSnapshot()}, nil, nil, DefaultCalcConfig())

	if _, err := service.GenerateRun(context.Background(), "batch-1", ""); !errors.Is(err, ErrBatchNotApproved) {
		t.Fatalf("expected ErrBatchNotApproved, got %v", err)
	}
}

func TestGenerateRunPersistsTotals(t *testing.T) {
	store := newFakeStore()
	store.batch = BatchInfo{ID: "batch-1", Status: "approved", Currency: "USD"}
	store.lines = []TimesheetLine{
		{EmployeeID: "emp-1", WorkDate: "2024-06-03", WorkType: WorkTypeNormal, NormalHours: 8, OTHours: 2},
		{EmployeeID: "emp-9", WorkDate: "2024-06-03", WorkType: WorkTypeNormal, NormalHours: 8},
	}
	service := NewService(store, &fakeMasterData{snapshot: testSnapshot()}, nil, nil, DefaultCalcConfig())

	run, err := service.GenerateRun(context.Background(), "batch-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if run.Status != RunStatusProcessed {
		t.Fatalf("expected processed run, got %s", run.Status)
	}
	if run.TotalCost != 1375 {
		t.Fatalf("expected total cost 1375, got %v", run.TotalCost)
	}
	if run.SkippedLines != 1 {
		t.Fatalf("expected one skipped line for unassigned employee, got %d", run.SkippedLines)
	}
	if run.EmployeeCount != 1 {
		t.Fatalf("expected one resolvable employee, got %d", run.EmployeeCount)
	}
	if len(store.items["run-1"]) != 1 {
		t.Fatalf("expected one persisted employee total, got %d", len(store.items["run-1"]))
	}
}

func TestGenerateRunRetryReplacesItems(t *testing.T) {
	store := newFakeStore()
	store.batch = BatchInfo{ID: "batch-1", Status: "approved", Currency: "USD"}
	store.lines = []TimesheetLine{
		{EmployeeID: "emp-1", WorkDate: "2024-06-03", WorkType: WorkTypeNormal, NormalHours: 8},
	}
	service := NewService(store, &fakeMasterData{snapshot: testSnapshot()}, nil, nil, DefaultCalcConfig())

	first, err := service.GenerateRun(context.Background(), "batch-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := service.GenerateRun(context.Background(), "batch-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("retry created a second run: %s vs %s", first.ID, second.ID)
	}
	if len(store.deletedFor) != 1 {
		t.Fatalf("expected prior items deleted once, got %v", store.deletedFor)
	}
	if len(store.items[first.ID]) != 1 {
		t.Fatalf("expected items replaced, got %d", len(store.items[first.ID]))
	}
	if first.TotalCost != second.TotalCost || first.TotalSale != second.TotalSale {
		t.Fatal("retry changed totals over identical input")
	}
}

func TestGenerateRunRefusesPaidRun(t *testing.T) {
	store := newFakeStore()
	store.batch = BatchInfo{ID: "batch-1", Status: "approved"}
	store.runs["run-1"] = Run{ID: "run-1", BatchID: "batch-1", Status: RunStatusPaid}
	service := NewService(store, &fakeMasterData{snapshot: testSnapshot()}, nil, nil, DefaultCalcConfig())

	if _, err := service.GenerateRun(context.Background(), "batch-1", ""); !errors.Is(err, ErrInvalidRunTransition) {
		t.Fatalf("expected ErrInvalidRunTransition, got %v", err)
	}
}

func TestAdvanceStatusOnlyProcessedToPaid(t *testing.T) {
	store := newFakeStore()
	store.runs["run-1"] = Run{ID: "run-1", Status: RunStatusProcessed}
	service := NewService(store, &fakeMasterData{}, nil, nil, DefaultCalcConfig())

	run, err := service.AdvanceStatus(context.Background(), "run-1", RunStatusPaid, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.Status != RunStatusPaid {
		t.Fatalf("expected paid, got %s", run.Status)
	}

	store.runs["run-2"] = Run{ID: "run-2", Status: RunStatusPending}
	if _, err := service.AdvanceStatus(context.Background(), "run-2", RunStatusPaid, ""); !errors.Is(err, ErrInvalidRunTransition) {
		t.Fatalf("expected ErrInvalidRunTransition for pending run, got %v", err)
	}
	if _, err := service.AdvanceStatus(context.Background(), "run-1", RunStatusPending, ""); !errors.Is(err, ErrInvalidRunTransition) {
		t.Fatalf("expected ErrInvalidRunTransition for backwards move, got %v", err)
	}
}
