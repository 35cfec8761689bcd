package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/studyforge-backend/internal/generation"
	"github.com/yungbote/studyforge-backend/internal/jobs"
	"github.com/yungbote/studyforge-backend/internal/platform/logger"
	"github.com/yungbote/studyforge-backend/internal/repos"
	"github.com/yungbote/studyforge-backend/internal/requestdata"
	"github.com/yungbote/studyforge-backend/internal/types"
)

// Count and fallback bounds for the collection-shaped kinds.
const (
	defaultFlashcardCount = 10
	maxFlashcardCount     = 50
	defaultQuizCount      = 5
	maxQuizCount          = 30
	defaultHoursPerWeek   = 5
)

// GenerationService runs the prompt → completion → extract → normalize
// pipeline for every generation kind. The lighter kinds (chat reply, summary,
// flashcards, quiz) return their payload directly; roadmaps and course
// outlines are persisted behind a generation-job record.
type GenerationService interface {
	GenerateChatReply(ctx context.Context, params generation.ChatParams) (string, error)
	GenerateSummary(ctx context.Context, params generation.SummaryParams) (*generation.Summary, error)
	GenerateFlashcards(ctx context.Context, params generation.FlashcardParams) ([]generation.Flashcard, error)
	GenerateQuiz(ctx context.Context, params generation.QuizParams) ([]generation.QuizQuestion, error)
	GenerateRoadmap(ctx context.Context, params generation.RoadmapParams) (*types.Roadmap, *types.GenerationJob, error)
	GenerateCourse(ctx context.Context, params generation.CourseParams) (*types.Course, *types.GenerationJob, error)
}

type generationService struct {
	log           *logger.Logger
	ai            CompletionClient
	jobStore      jobs.Store
	notifier      JobNotifier
	courseRepo    repos.CourseRepo
	moduleRepo    repos.CourseModuleRepo
	roadmapRepo   repos.RoadmapRepo
	milestoneRepo repos.RoadmapMilestoneRepo
}

func NewGenerationService(
	baseLog *logger.Logger,
	ai CompletionClient,
	jobStore jobs.Store,
	notifier JobNotifier,
	courseRepo repos.CourseRepo,
	moduleRepo repos.CourseModuleRepo,
	roadmapRepo repos.RoadmapRepo,
	milestoneRepo repos.RoadmapMilestoneRepo,
) GenerationService {
	return &generationService{
		log:           baseLog.With("service", "GenerationService"),
		ai:            ai,
		jobStore:      jobStore,
		notifier:      notifier,
		courseRepo:    courseRepo,
		moduleRepo:    moduleRepo,
		roadmapRepo:   roadmapRepo,
		milestoneRepo: milestoneRepo,
	}
}

func (s *generationService) GenerateChatReply(ctx context.Context, params generation.ChatParams) (string, error) {
	const op = "GenerationService.GenerateChatReply"

	params.Message = strings.TrimSpace(params.Message)
	if params.Message == "" {
		return "", generation.NewError(generation.CodeInvalidArgument, op, "message is required", nil)
	}

	raw, err := s.ai.Complete(ctx, generation.BuildChatPrompt(params))
	if err != nil {
		return "", err
	}
	reply, err := generation.NormalizeChatReply(raw)
	if err != nil {
		return "", err
	}
	s.log.Info("chat reply generated", "history_turns", len(params.History))
	return reply, nil
}

func (s *generationService) GenerateSummary(ctx context.Context, params generation.SummaryParams) (*generation.Summary, error) {
	const op = "GenerationService.GenerateSummary"

	params.Text = strings.TrimSpace(params.Text)
	if params.Text == "" {
		return nil, generation.NewError(generation.CodeInvalidArgument, op, "text is required", nil)
	}
	params.Focus = strings.TrimSpace(params.Focus)

	raw, err := s.ai.Complete(ctx, generation.BuildSummaryPrompt(params))
	if err != nil {
		return nil, err
	}
	payload, err := generation.Extract(raw, generation.ShapeObject)
	if err != nil {
		return nil, err
	}
	summary, err := generation.NormalizeSummary(payload)
	if err != nil {
		return nil, err
	}
	s.log.Info("summary generated", "key_points", len(summary.KeyPoints))
	return summary, nil
}

func (s *generationService) GenerateFlashcards(ctx context.Context, params generation.FlashcardParams) ([]generation.Flashcard, error) {
	const op = "GenerationService.GenerateFlashcards"

	params.Topic = strings.TrimSpace(params.Topic)
	if params.Topic == "" {
		return nil, generation.NewError(generation.CodeInvalidArgument, op, "topic is required", nil)
	}
	params.Count = clampCount(params.Count, defaultFlashcardCount, maxFlashcardCount)
	params.Notes = strings.TrimSpace(params.Notes)

	raw, err := s.ai.Complete(ctx, generation.BuildFlashcardPrompt(params))
	if err != nil {
		return nil, err
	}
	payload, err := generation.Extract(raw, generation.ShapeArray)
	if err != nil {
		return nil, err
	}
	cards, err := generation.NormalizeFlashcards(payload)
	if err != nil {
		return nil, err
	}
	s.log.Info("flashcards generated", "topic", params.Topic, "cards", len(cards))
	return cards, nil
}

func (s *generationService) GenerateQuiz(ctx context.Context, params generation.QuizParams) ([]generation.QuizQuestion, error) {
	const op = "GenerationService.GenerateQuiz"

	params.Topic = strings.TrimSpace(params.Topic)
	if params.Topic == "" {
		return nil, generation.NewError(generation.CodeInvalidArgument, op, "topic is required", nil)
	}
	params.Count = clampCount(params.Count, defaultQuizCount, maxQuizCount)
	params.Difficulty = normalizeDifficulty(params.Difficulty)

	raw, err := s.ai.Complete(ctx, generation.BuildQuizPrompt(params))
	if err != nil {
		return nil, err
	}
	payload, err := generation.Extract(raw, generation.ShapeArray)
	if err != nil {
		return nil, err
	}
	questions, err := generation.NormalizeQuizQuestions(payload)
	if err != nil {
		return nil, err
	}
	s.log.Info("quiz generated", "topic", params.Topic, "questions", len(questions))
	return questions, nil
}

func (s *generationService) GenerateRoadmap(ctx context.Context, params generation.RoadmapParams) (*types.Roadmap, *types.GenerationJob, error) {
	const op = "GenerationService.GenerateRoadmap"

	userID := requestdata.UserIDFrom(ctx)
	if userID == uuid.Nil {
		return nil, nil, generation.NewError(generation.CodeInvalidArgument, op, "no request owner resolved", nil)
	}
	params.Topic = strings.TrimSpace(params.Topic)
	if params.Topic == "" {
		return nil, nil, generation.NewError(generation.CodeInvalidArgument, op, "topic is required", nil)
	}
	if params.DurationWeeks < 1 {
		return nil, nil, generation.NewError(generation.CodeInvalidArgument, op, "durationWeeks must be at least 1", nil)
	}
	if params.HoursPerWeek < 1 {
		params.HoursPerWeek = defaultHoursPerWeek
	}
	params.Summary = strings.TrimSpace(params.Summary)

	kind := generation.KindRoadmap
	if params.Detailed {
		kind = generation.KindDetailedRoadmap
	}

	var roadmap *types.Roadmap
	job, err := s.runJob(ctx, userID, kind, params, func() (uuid.UUID, error) {
		built, pipeErr := s.buildRoadmap(ctx, userID, params)
		if pipeErr != nil {
			return uuid.Nil, pipeErr
		}
		roadmap = built
		return built.ID, nil
	})
	if err != nil {
		return nil, job, err
	}
	s.log.Info("roadmap generated", "roadmap_id", roadmap.ID, "kind", kind, "milestones", len(roadmap.Milestones))
	return roadmap, job, nil
}

func (s *generationService) GenerateCourse(ctx context.Context, params generation.CourseParams) (*types.Course, *types.GenerationJob, error) {
	const op = "GenerationService.GenerateCourse"

	userID := requestdata.UserIDFrom(ctx)
	if userID == uuid.Nil {
		return nil, nil, generation.NewError(generation.CodeInvalidArgument, op, "no request owner resolved", nil)
	}
	params.Topic = strings.TrimSpace(params.Topic)
	if params.Topic == "" {
		return nil, nil, generation.NewError(generation.CodeInvalidArgument, op, "topic is required", nil)
	}
	params.Level = normalizeLevel(params.Level)
	params.Language = strings.TrimSpace(params.Language)
	if params.Language == "" {
		params.Language = "English"
	}
	ideOptOut := params.IncludeIDESetup != nil && !*params.IncludeIDESetup

	var course *types.Course
	job, err := s.runJob(ctx, userID, generation.KindCourseOutline, params, func() (uuid.UUID, error) {
		raw, pipeErr := s.ai.Complete(ctx, generation.BuildCoursePrompt(params))
		if pipeErr != nil {
			return uuid.Nil, pipeErr
		}
		payload, pipeErr := generation.Extract(raw, generation.ShapeObject)
		if pipeErr != nil {
			return uuid.Nil, pipeErr
		}
		outline, pipeErr := generation.NormalizeCourseOutline(payload, params.Topic, ideOptOut)
		if pipeErr != nil {
			return uuid.Nil, pipeErr
		}
		built, pipeErr := s.persistCourse(ctx, userID, outline)
		if pipeErr != nil {
			return uuid.Nil, pipeErr
		}
		course = built
		return built.ID, nil
	})
	if err != nil {
		return nil, job, err
	}
	s.log.Info("course generated", "course_id", course.ID, "modules", len(course.Modules))
	return course, job, nil
}

// runJob wraps one pipeline execution in the generation-job lifecycle: the
// running row (with its input snapshot) is written before anything else
// happens, then the job is finalized exactly once. The pipeline's error is
// returned unchanged; the job row is an audit side channel, not a substitute
// for the caller's error handling.
func (s *generationService) runJob(ctx context.Context, userID uuid.UUID, kind generation.Kind, params any, pipeline func() (uuid.UUID, error)) (*types.GenerationJob, error) {
	job, err := s.jobStore.Begin(ctx, nil, userID, kind, params)
	if err != nil {
		return nil, err
	}
	s.notifier.JobStarted(ctx, userID, job)

	resultID, pipeErr := pipeline()
	if pipeErr != nil {
		if failErr := s.jobStore.Fail(ctx, nil, job, pipeErr); failErr != nil {
			s.log.Error("job row not finalized after pipeline failure", "job_id", job.ID, "error", failErr.Error())
		}
		s.notifier.JobFailed(ctx, userID, job, generation.MessageOf(pipeErr))
		return job, pipeErr
	}

	if err := s.jobStore.Succeed(ctx, nil, job, resultID); err != nil {
		s.log.Error("job row not finalized after pipeline success", "job_id", job.ID, "error", err.Error())
	}
	s.notifier.JobSucceeded(ctx, userID, job, resultID)
	return job, nil
}

func (s *generationService) buildRoadmap(ctx context.Context, userID uuid.UUID, params generation.RoadmapParams) (*types.Roadmap, error) {
	if params.Detailed {
		raw, err := s.ai.Complete(ctx, generation.BuildDetailedRoadmapPrompt(params))
		if err != nil {
			return nil, err
		}
		payload, err := generation.Extract(raw, generation.ShapeObject)
		if err != nil {
			return nil, err
		}
		detailed, err := generation.NormalizeDetailedRoadmap(payload)
		if err != nil {
			return nil, err
		}
		return s.persistDetailedRoadmap(ctx, userID, params, detailed)
	}

	raw, err := s.ai.Complete(ctx, generation.BuildRoadmapPrompt(params))
	if err != nil {
		return nil, err
	}
	payload, err := generation.Extract(raw, generation.ShapeArray)
	if err != nil {
		return nil, err
	}
	milestones, err := generation.NormalizeMilestones(payload)
	if err != nil {
		return nil, err
	}
	return s.persistSimpleRoadmap(ctx, userID, params, milestones)
}

// Child rows are only attempted after the parent write succeeds. A child
// failure leaves the parent orphaned but inert; the row is kept for manual
// cleanup and the failure is surfaced to the job.
func (s *generationService) persistSimpleRoadmap(ctx context.Context, userID uuid.UUID, params generation.RoadmapParams, milestones []generation.RoadmapMilestone) (*types.Roadmap, error) {
	const op = "GenerationService.persistSimpleRoadmap"

	now := time.Now()
	roadmap := &types.Roadmap{
		ID:            uuid.New(),
		UserID:        userID,
		Kind:          types.RoadmapKindSimple,
		Topic:         params.Topic,
		Title:         params.Topic,
		UserSummary:   params.Summary,
		ResourceList:  mustJSON([]string{}),
		DurationWeeks: params.DurationWeeks,
		HoursPerWeek:  params.HoursPerWeek,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, err := s.roadmapRepo.Create(ctx, nil, roadmap); err != nil {
		return nil, repos.ClassifyWriteError(op, err)
	}

	rows := make([]*types.RoadmapMilestone, 0, len(milestones))
	for i, m := range milestones {
		rows = append(rows, &types.RoadmapMilestone{
			ID:             uuid.New(),
			RoadmapID:      roadmap.ID,
			Position:       i + 1,
			RefID:          m.ID,
			Title:          m.Title,
			Description:    m.Description,
			Difficulty:     m.Difficulty,
			EstimatedHours: m.EstimatedHours,
			Completed:      false,
			Topics:         mustJSON([]string{}),
			Exercises:      mustJSON([]string{}),
			Projects:       mustJSON([]string{}),
			Resources:      mustJSON([]string{}),
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
	if _, err := s.milestoneRepo.CreateBatch(ctx, nil, rows); err != nil {
		s.log.Warn("roadmap left without milestones after child write failure", "roadmap_id", roadmap.ID, "error", err.Error())
		return nil, repos.ClassifyWriteError(op, err)
	}
	for _, row := range rows {
		roadmap.Milestones = append(roadmap.Milestones, *row)
	}
	return roadmap, nil
}

func (s *generationService) persistDetailedRoadmap(ctx context.Context, userID uuid.UUID, params generation.RoadmapParams, detailed *generation.DetailedRoadmap) (*types.Roadmap, error) {
	const op = "GenerationService.persistDetailedRoadmap"

	title := detailed.Title
	if title == "" {
		title = params.Topic
	}
	userSummary := detailed.UserSummary
	if userSummary == "" {
		userSummary = params.Summary
	}

	now := time.Now()
	roadmap := &types.Roadmap{
		ID:            uuid.New(),
		UserID:        userID,
		Kind:          types.RoadmapKindDetailed,
		Topic:         params.Topic,
		Title:         title,
		UserSummary:   userSummary,
		FinalProject:  detailed.FinalProject,
		ResourceList:  mustJSON(detailed.ResourceList),
		DurationWeeks: params.DurationWeeks,
		HoursPerWeek:  params.HoursPerWeek,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, err := s.roadmapRepo.Create(ctx, nil, roadmap); err != nil {
		return nil, repos.ClassifyWriteError(op, err)
	}

	rows := make([]*types.RoadmapMilestone, 0, len(detailed.Stages))
	for i, st := range detailed.Stages {
		rows = append(rows, &types.RoadmapMilestone{
			ID:             uuid.New(),
			RoadmapID:      roadmap.ID,
			Position:       i + 1,
			RefID:          st.ID,
			Title:          st.Title,
			Description:    st.Description,
			Difficulty:     st.Difficulty,
			EstimatedHours: st.EstimatedHours,
			Completed:      false,
			Topics:         mustJSON(st.Topics),
			Exercises:      mustJSON(st.Exercises),
			Projects:       mustJSON(st.Projects),
			Resources:      mustJSON(st.Resources),
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
	if _, err := s.milestoneRepo.CreateBatch(ctx, nil, rows); err != nil {
		s.log.Warn("roadmap left without stages after child write failure", "roadmap_id", roadmap.ID, "error", err.Error())
		return nil, repos.ClassifyWriteError(op, err)
	}
	for _, row := range rows {
		roadmap.Milestones = append(roadmap.Milestones, *row)
	}
	return roadmap, nil
}

func (s *generationService) persistCourse(ctx context.Context, userID uuid.UUID, outline *generation.CourseOutline) (*types.Course, error) {
	const op = "GenerationService.persistCourse"

	now := time.Now()
	course := &types.Course{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       outline.Title,
		Description: outline.Description,
		Level:       outline.Level,
		Language:    outline.Language,
		Tags:        mustJSON(outline.Tags),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := s.courseRepo.Create(ctx, nil, course); err != nil {
		return nil, repos.ClassifyWriteError(op, err)
	}

	rows := make([]*types.CourseModule, 0, len(outline.Modules))
	for i, mod := range outline.Modules {
		row := &types.CourseModule{
			ID:            uuid.New(),
			CourseID:      course.ID,
			Position:      i + 1,
			Title:         mod.Title,
			Summary:       mod.Summary,
			KeyConcepts:   mustJSON(mod.KeyConcepts),
			Topics:        mustJSON(mod.Topics),
			Flashcards:    mustJSON(mod.Flashcards),
			PracticeTasks: mustJSON(mod.PracticeTasks),
			QuizQuestions: mustJSON(mod.QuizQuestions),
			Resources:     mustJSON(mod.Resources),
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if mod.IDESetup != nil {
			row.IDESetup = mustJSON(mod.IDESetup)
		}
		rows = append(rows, row)
	}
	if _, err := s.moduleRepo.CreateBatch(ctx, nil, rows); err != nil {
		s.log.Warn("course left without modules after child write failure", "course_id", course.ID, "error", err.Error())
		return nil, repos.ClassifyWriteError(op, err)
	}
	for _, row := range rows {
		course.Modules = append(course.Modules, *row)
	}
	return course, nil
}

func clampCount(n, def, max int) int {
	switch {
	case n <= 0:
		return def
	case n > max:
		return max
	default:
		return n
	}
}

func normalizeDifficulty(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "easy":
		return "easy"
	case "hard":
		return "hard"
	default:
		return "medium"
	}
}

func normalizeLevel(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "intermediate":
		return "intermediate"
	case "advanced":
		return "advanced"
	default:
		return "beginner"
	}
}

func mustJSON(v any) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON([]byte("null"))
	}
	return datatypes.JSON(b)
}
