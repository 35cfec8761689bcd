package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyforge-backend/internal/generation"
	"github.com/yungbote/studyforge-backend/internal/platform/logger"
	"github.com/yungbote/studyforge-backend/internal/requestdata"
	"github.com/yungbote/studyforge-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func ownerContext(userID uuid.UUID) context.Context {
	return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: userID})
}

// fakeCompletion replays canned responses and records every prompt, plus the
// shared call order used to check that job rows land before the provider call.
type fakeCompletion struct {
	responses []string
	err       error
	prompts   []string
	order     *[]string
}

func (f *fakeCompletion) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.order != nil {
		*f.order = append(*f.order, "complete")
	}
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", errors.New("fakeCompletion: no canned response left")
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

type fakeJobStore struct {
	begins   int
	succeeds int
	fails    int
	lastKind generation.Kind
	failWith error
	order    *[]string
}

func (f *fakeJobStore) Begin(ctx context.Context, tx *gorm.DB, userID uuid.UUID, kind generation.Kind, params any) (*types.GenerationJob, error) {
	f.begins++
	f.lastKind = kind
	if f.order != nil {
		*f.order = append(*f.order, "begin")
	}
	return &types.GenerationJob{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      string(kind),
		Status:    "running",
		StartedAt: time.Now(),
	}, nil
}

func (f *fakeJobStore) Succeed(ctx context.Context, tx *gorm.DB, job *types.GenerationJob, resultID uuid.UUID) error {
	f.succeeds++
	job.Status = "done"
	job.ResultID = &resultID
	return nil
}

func (f *fakeJobStore) Fail(ctx context.Context, tx *gorm.DB, job *types.GenerationJob, cause error) error {
	f.fails++
	f.failWith = cause
	job.Status = "failed"
	if cause != nil {
		job.Error = cause.Error()
	}
	return nil
}

type fakeNotifier struct {
	started   int
	succeeded int
	failed    int
	lastError string
}

func (f *fakeNotifier) JobStarted(ctx context.Context, userID uuid.UUID, job *types.GenerationJob) {
	f.started++
}

func (f *fakeNotifier) JobSucceeded(ctx context.Context, userID uuid.UUID, job *types.GenerationJob, resultID uuid.UUID) {
	f.succeeded++
}

func (f *fakeNotifier) JobFailed(ctx context.Context, userID uuid.UUID, job *types.GenerationJob, errorMessage string) {
	f.failed++
	f.lastError = errorMessage
}

type fakeCourseRepo struct {
	created []*types.Course
	err     error
}

func (f *fakeCourseRepo) Create(ctx context.Context, tx *gorm.DB, course *types.Course) (*types.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, course)
	return course, nil
}

func (f *fakeCourseRepo) GetByID(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) (*types.Course, error) {
	for _, c := range f.created {
		if c.ID == courseID {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCourseRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Course, error) {
	var out []*types.Course
	for _, c := range f.created {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeModuleRepo struct {
	created []*types.CourseModule
	err     error
}

func (f *fakeModuleRepo) CreateBatch(ctx context.Context, tx *gorm.DB, modules []*types.CourseModule) ([]*types.CourseModule, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, modules...)
	return modules, nil
}

func (f *fakeModuleRepo) GetByCourseID(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) ([]*types.CourseModule, error) {
	var out []*types.CourseModule
	for _, m := range f.created {
		if m.CourseID == courseID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeRoadmapRepo struct {
	created []*types.Roadmap
	err     error
}

func (f *fakeRoadmapRepo) Create(ctx context.Context, tx *gorm.DB, roadmap *types.Roadmap) (*types.Roadmap, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, roadmap)
	return roadmap, nil
}

func (f *fakeRoadmapRepo) GetByID(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) (*types.Roadmap, error) {
	for _, r := range f.created {
		if r.ID == roadmapID {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRoadmapRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Roadmap, error) {
	var out []*types.Roadmap
	for _, r := range f.created {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeMilestoneRepo struct {
	created []*types.RoadmapMilestone
	err     error
}

func (f *fakeMilestoneRepo) CreateBatch(ctx context.Context, tx *gorm.DB, milestones []*types.RoadmapMilestone) ([]*types.RoadmapMilestone, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, milestones...)
	return milestones, nil
}

func (f *fakeMilestoneRepo) GetByRoadmapID(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) ([]*types.RoadmapMilestone, error) {
	var out []*types.RoadmapMilestone
	for _, m := range f.created {
		if m.RoadmapID == roadmapID {
			out = append(out, m)
		}
	}
	return out, nil
}

type generationFixture struct {
	svc        GenerationService
	ai         *fakeCompletion
	jobs       *fakeJobStore
	notifier   *fakeNotifier
	courses    *fakeCourseRepo
	modules    *fakeModuleRepo
	roadmaps   *fakeRoadmapRepo
	milestones *fakeMilestoneRepo
	order      []string
}

func newGenerationFixture(t *testing.T, responses ...string) *generationFixture {
	t.Helper()
	fx := &generationFixture{
		ai:         &fakeCompletion{responses: responses},
		jobs:       &fakeJobStore{},
		notifier:   &fakeNotifier{},
		courses:    &fakeCourseRepo{},
		modules:    &fakeModuleRepo{},
		roadmaps:   &fakeRoadmapRepo{},
		milestones: &fakeMilestoneRepo{},
	}
	fx.ai.order = &fx.order
	fx.jobs.order = &fx.order
	fx.svc = NewGenerationService(testLogger(t), fx.ai, fx.jobs, fx.notifier,
		fx.courses, fx.modules, fx.roadmaps, fx.milestones)
	return fx
}

func TestGenerateChatReplyReturnsTextWithoutJob(t *testing.T) {
	fx := newGenerationFixture(t, "Sure, start with the basics of osmosis.")

	reply, err := fx.svc.GenerateChatReply(context.Background(), generation.ChatParams{
		Message: "Where do I start with osmosis?",
		History: []generation.ChatTurn{{Role: "user", Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("GenerateChatReply: %v", err)
	}
	if reply != "Sure, start with the basics of osmosis." {
		t.Fatalf("reply: got %q", reply)
	}
	if fx.jobs.begins != 0 {
		t.Fatalf("job rows for chat: want=0 got=%d", fx.jobs.begins)
	}
}

func TestGenerateChatReplyRequiresMessage(t *testing.T) {
	fx := newGenerationFixture(t)

	_, err := fx.svc.GenerateChatReply(context.Background(), generation.ChatParams{Message: "   "})
	if !generation.IsCode(err, generation.CodeInvalidArgument) {
		t.Fatalf("error code: want=%s got=%v", generation.CodeInvalidArgument, err)
	}
	if len(fx.ai.prompts) != 0 {
		t.Fatalf("provider calls: want=0 got=%d", len(fx.ai.prompts))
	}
}

func TestGenerateFlashcardsClampsCount(t *testing.T) {
	fx := newGenerationFixture(t, `[{"question":"Q","answer":"A"}]`)

	cards, err := fx.svc.GenerateFlashcards(context.Background(), generation.FlashcardParams{
		Topic: "Cell biology",
		Count: 500,
	})
	if err != nil {
		t.Fatalf("GenerateFlashcards: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("cards: want=1 got=%d", len(cards))
	}
	if !strings.Contains(fx.ai.prompts[0], "exactly 50 study flashcards") {
		t.Fatalf("prompt not clamped to max: %q", fx.ai.prompts[0])
	}
}

func TestGenerateQuizDefaultsCountAndDifficulty(t *testing.T) {
	fx := newGenerationFixture(t,
		`[{"question":"Q","options":["a","b","c","d"],"correctAnswer":1}]`)

	_, err := fx.svc.GenerateQuiz(context.Background(), generation.QuizParams{
		Topic:      "Photosynthesis",
		Difficulty: "IMPOSSIBLE",
	})
	if err != nil {
		t.Fatalf("GenerateQuiz: %v", err)
	}
	prompt := fx.ai.prompts[0]
	if !strings.Contains(prompt, "medium-difficulty") {
		t.Fatalf("difficulty not defaulted to medium: %q", prompt)
	}
	if !strings.Contains(prompt, "exactly 5 questions") {
		t.Fatalf("count not defaulted to 5: %q", prompt)
	}
}

func TestGenerateRoadmapWritesJobBeforeProviderCall(t *testing.T) {
	fx := newGenerationFixture(t,
		`[{"id":"1","title":"Basics","description":"d","difficulty":"easy","estimatedHours":4}]`)

	_, _, err := fx.svc.GenerateRoadmap(ownerContext(uuid.New()), generation.RoadmapParams{
		Topic:         "Linear algebra",
		DurationWeeks: 6,
	})
	if err != nil {
		t.Fatalf("GenerateRoadmap: %v", err)
	}
	if len(fx.order) < 2 || fx.order[0] != "begin" || fx.order[1] != "complete" {
		t.Fatalf("call order: want=[begin complete ...] got=%v", fx.order)
	}
}

func TestGenerateRoadmapPersistsMilestonesAndFinalizesJob(t *testing.T) {
	userID := uuid.New()
	fx := newGenerationFixture(t, `[
		{"id":"1","title":"Basics","description":"d1","difficulty":"easy","estimatedHours":4},
		{"id":"2","title":"Practice","description":"d2","difficulty":"medium","estimatedHours":6}
	]`)

	roadmap, job, err := fx.svc.GenerateRoadmap(ownerContext(userID), generation.RoadmapParams{
		Topic:         "Linear algebra",
		DurationWeeks: 6,
	})
	if err != nil {
		t.Fatalf("GenerateRoadmap: %v", err)
	}
	if roadmap.Kind != types.RoadmapKindSimple {
		t.Fatalf("kind: want=%s got=%s", types.RoadmapKindSimple, roadmap.Kind)
	}
	if roadmap.HoursPerWeek != defaultHoursPerWeek {
		t.Fatalf("hoursPerWeek default: want=%d got=%d", defaultHoursPerWeek, roadmap.HoursPerWeek)
	}
	if len(fx.milestones.created) != 2 {
		t.Fatalf("milestone rows: want=2 got=%d", len(fx.milestones.created))
	}
	first := fx.milestones.created[0]
	if first.Position != 1 || first.RefID != "1" || first.Completed {
		t.Fatalf("first milestone row: position=%d refID=%q completed=%v", first.Position, first.RefID, first.Completed)
	}
	if job == nil || job.Status != "done" {
		t.Fatalf("job not finalized: %+v", job)
	}
	if job.ResultID == nil || *job.ResultID != roadmap.ID {
		t.Fatalf("job result id: want=%s got=%v", roadmap.ID, job.ResultID)
	}
	if fx.notifier.started != 1 || fx.notifier.succeeded != 1 || fx.notifier.failed != 0 {
		t.Fatalf("notifications: started=%d succeeded=%d failed=%d",
			fx.notifier.started, fx.notifier.succeeded, fx.notifier.failed)
	}
}

func TestGenerateDetailedRoadmapPersistsStagePayloads(t *testing.T) {
	fx := newGenerationFixture(t, `{
		"title":"Rust in 8 weeks",
		"userSummary":"Focused plan",
		"stages":[{
			"id":"1","title":"Ownership","description":"d","difficulty":"medium",
			"estimatedHours":12,"topics":["borrowing"],"exercises":["drills"],
			"projects":["cli tool"],"resources":["The Book"]
		}],
		"finalProject":"Build a web server",
		"resourceList":["rustup docs"]
	}`)

	roadmap, _, err := fx.svc.GenerateRoadmap(ownerContext(uuid.New()), generation.RoadmapParams{
		Topic:         "Rust",
		DurationWeeks: 8,
		HoursPerWeek:  10,
		Detailed:      true,
	})
	if err != nil {
		t.Fatalf("GenerateRoadmap detailed: %v", err)
	}
	if roadmap.Kind != types.RoadmapKindDetailed {
		t.Fatalf("kind: want=%s got=%s", types.RoadmapKindDetailed, roadmap.Kind)
	}
	if roadmap.Title != "Rust in 8 weeks" {
		t.Fatalf("title from payload: got %q", roadmap.Title)
	}
	if roadmap.FinalProject != "Build a web server" {
		t.Fatalf("final project: got %q", roadmap.FinalProject)
	}
	if len(fx.milestones.created) != 1 {
		t.Fatalf("stage rows: want=1 got=%d", len(fx.milestones.created))
	}
	stage := fx.milestones.created[0]
	if !strings.Contains(string(stage.Topics), "borrowing") {
		t.Fatalf("stage topics payload missing: %s", stage.Topics)
	}
	if fx.jobs.lastKind != generation.KindDetailedRoadmap {
		t.Fatalf("job kind: want=%s got=%s", generation.KindDetailedRoadmap, fx.jobs.lastKind)
	}
}

func TestGenerateRoadmapFailureKeepsPipelineError(t *testing.T) {
	fx := newGenerationFixture(t)
	fx.ai.err = generation.NewError(generation.CodeProvider, "openai.Complete", "completion request failed", errors.New("boom"))

	_, job, err := fx.svc.GenerateRoadmap(ownerContext(uuid.New()), generation.RoadmapParams{
		Topic:         "Calculus",
		DurationWeeks: 4,
	})
	if !generation.IsCode(err, generation.CodeProvider) {
		t.Fatalf("error code: want=%s got=%v", generation.CodeProvider, err)
	}
	if job == nil || job.Status != "failed" {
		t.Fatalf("job not failed: %+v", job)
	}
	if fx.jobs.fails != 1 || !errors.Is(fx.jobs.failWith, err) {
		t.Fatalf("store.Fail cause: want original pipeline error, got %v", fx.jobs.failWith)
	}
	if fx.notifier.failed != 1 {
		t.Fatalf("failure notifications: want=1 got=%d", fx.notifier.failed)
	}
	if len(fx.roadmaps.created) != 0 {
		t.Fatalf("roadmap rows after failure: want=0 got=%d", len(fx.roadmaps.created))
	}
}

func TestGenerateRoadmapRejectsMissingOwner(t *testing.T) {
	fx := newGenerationFixture(t)

	_, _, err := fx.svc.GenerateRoadmap(context.Background(), generation.RoadmapParams{
		Topic:         "Calculus",
		DurationWeeks: 4,
	})
	if !generation.IsCode(err, generation.CodeInvalidArgument) {
		t.Fatalf("error code: want=%s got=%v", generation.CodeInvalidArgument, err)
	}
	if fx.jobs.begins != 0 {
		t.Fatalf("job rows: want=0 got=%d", fx.jobs.begins)
	}
}

func TestGenerateRoadmapRejectsZeroDuration(t *testing.T) {
	fx := newGenerationFixture(t)

	_, _, err := fx.svc.GenerateRoadmap(ownerContext(uuid.New()), generation.RoadmapParams{
		Topic: "Calculus",
	})
	if !generation.IsCode(err, generation.CodeInvalidArgument) {
		t.Fatalf("error code: want=%s got=%v", generation.CodeInvalidArgument, err)
	}
}

func TestGenerateCoursePersistsOutlineWithModules(t *testing.T) {
	userID := uuid.New()
	fx := newGenerationFixture(t, `{
		"title":"Intro to Go",
		"description":"A practical course",
		"level":"beginner",
		"language":"English",
		"tags":["go","programming"],
		"modules":[{
			"title":"Syntax",
			"summary":"s",
			"keyConcepts":["types"],
			"topics":["variables"],
			"flashcards":[{"question":"q","answer":"a"}],
			"practiceTasks":["write a loop"],
			"quizQuestions":[{"question":"q","options":["a","b","c","d"],"correctAnswer":0}],
			"resources":[]
		}]
	}`)

	course, job, err := fx.svc.GenerateCourse(ownerContext(userID), generation.CourseParams{
		Topic: "Go programming",
	})
	if err != nil {
		t.Fatalf("GenerateCourse: %v", err)
	}
	if course.Title != "Intro to Go" {
		t.Fatalf("title: got %q", course.Title)
	}
	if len(fx.modules.created) != 1 {
		t.Fatalf("module rows: want=1 got=%d", len(fx.modules.created))
	}
	mod := fx.modules.created[0]
	if mod.Position != 1 || mod.CourseID != course.ID {
		t.Fatalf("module row: position=%d courseID=%s", mod.Position, mod.CourseID)
	}
	// The coverage pass fills missing video and article resources.
	if !strings.Contains(string(mod.Resources), "video") {
		t.Fatalf("module resources missing synthesized video: %s", mod.Resources)
	}
	if job == nil || job.Status != "done" {
		t.Fatalf("job not finalized: %+v", job)
	}
	if fx.jobs.lastKind != generation.KindCourseOutline {
		t.Fatalf("job kind: want=%s got=%s", generation.KindCourseOutline, fx.jobs.lastKind)
	}
}

func TestGenerateCourseChildWriteFailureFailsJob(t *testing.T) {
	fx := newGenerationFixture(t, `{
		"title":"Intro to Go","description":"d","level":"beginner","language":"English",
		"tags":[],
		"modules":[{"title":"Syntax","summary":"s","keyConcepts":[],"topics":[],
			"flashcards":[],"practiceTasks":[],"quizQuestions":[],"resources":[]}]
	}`)
	fx.modules.err = errors.New("insert failed")

	_, job, err := fx.svc.GenerateCourse(ownerContext(uuid.New()), generation.CourseParams{
		Topic: "Go programming",
	})
	if !generation.IsCode(err, generation.CodePersistence) {
		t.Fatalf("error code: want=%s got=%v", generation.CodePersistence, err)
	}
	if job == nil || job.Status != "failed" {
		t.Fatalf("job status after child failure: %+v", job)
	}
	// The parent row stays behind; the write is not transactional.
	if len(fx.courses.created) != 1 {
		t.Fatalf("orphaned course rows: want=1 got=%d", len(fx.courses.created))
	}
}

func TestGenerateSummaryParsesObjectPayload(t *testing.T) {
	fx := newGenerationFixture(t, "```json\n{\"summary\":\"Short.\",\"keyPoints\":[\"a\",\"b\"]}\n```")

	summary, err := fx.svc.GenerateSummary(context.Background(), generation.SummaryParams{
		Text: "long study material",
	})
	if err != nil {
		t.Fatalf("GenerateSummary: %v", err)
	}
	if summary.Summary != "Short." {
		t.Fatalf("summary text: got %q", summary.Summary)
	}
	if len(summary.KeyPoints) != 2 {
		t.Fatalf("key points: want=2 got=%d", len(summary.KeyPoints))
	}
	if fx.jobs.begins != 0 {
		t.Fatalf("job rows for summary: want=0 got=%d", fx.jobs.begins)
	}
}
