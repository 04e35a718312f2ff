package service

import (
	"ai_eng_tam_backend/internal/config"
	"ai_eng_tam_backend/internal/flow"
	"ai_eng_tam_backend/internal/model"
	"ai_eng_tam_backend/internal/schema"
	"ai_eng_tam_backend/internal/util"
	"ai_eng_tam_backend/pkg/logger"
	"ai_eng_tam_backend/pkg/monitoring"
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmissionStore 持久化协作方，见 repository.SurveyRepository。
type SubmissionStore interface {
	SubmitSurvey(bundle *flow.SubmissionBundle) (string, error)
}

// DeviceFlagStore 设备级重复提交标记，见 repository.DeviceFlagRepository。
type DeviceFlagStore interface {
	MarkSubmitted(ctx context.Context, deviceID, group string) error
	HasSubmitted(ctx context.Context, deviceID, group string) (bool, error)
}

type session struct {
	ctrl     *flow.Controller
	deviceID string
	lastSeen time.Time
}

// SurveyService 管理进行中的问卷会话。每个会话只被其受访者串行访问，
// 锁保护会话表和 lastSeen（后台回收协程也会读它）。
type SurveyService struct {
	store SubmissionStore
	flags DeviceFlagStore

	mu          sync.RWMutex
	sessions    map[string]*session
	accessCodes map[string]string
}

func NewSurveyService(store SubmissionStore, flags DeviceFlagStore, cfg *config.Config) *SurveyService {
	return &SurveyService{
		store:       store,
		flags:       flags,
		sessions:    make(map[string]*session),
		accessCodes: cfg.Survey.AccessCodes,
	}
}

// UpdateConfig 配置热更新回调：访问码即时生效，进行中的会话不受影响。
func (s *SurveyService) UpdateConfig(cfg *config.Config) {
	s.mu.Lock()
	s.accessCodes = cfg.Survey.AccessCodes
	s.mu.Unlock()
}

// Definition returns the full instrument for one group, for the rendering client.
type Definition struct {
	StakeholderType string                    `json:"stakeholder_type"`
	LikertLabels    []schema.LikertLabel      `json:"likert_labels"`
	Sections        []schema.Section          `json:"sections"`
	ToolUsage       schema.ToolUsageSection   `json:"tool_usage"`
	Demographics    []schema.DemographicField `json:"demographics"`
}

func (s *SurveyService) Definition(group string) (*Definition, error) {
	sections, ok := schema.LikertSections(group)
	if !ok {
		return nil, util.ErrUnknownStakeholder
	}
	toolUsage, _ := schema.ToolUsageSectionFor(group)
	demo, _ := schema.DemographicFields(group)
	return &Definition{
		StakeholderType: group,
		LikertLabels:    schema.LikertLabels,
		Sections:        sections,
		ToolUsage:       toolUsage,
		Demographics:    demo,
	}, nil
}

// StartSession validates the access code and opens a new wizard session.
// The returned alreadySubmitted flag is advisory: it seeds the respondent's
// repeat flag but never blocks a second submission.
func (s *SurveyService) StartSession(ctx context.Context, group, accessCode, deviceID string) (sessionID string, alreadySubmitted bool, err error) {
	if !model.ValidStakeholderType(group) {
		return "", false, util.ErrUnknownStakeholder
	}

	normalized := strings.ToUpper(strings.TrimSpace(accessCode))
	s.mu.RLock()
	expected := s.accessCodes[group]
	s.mu.RUnlock()
	if expected == "" || normalized != expected {
		return "", false, util.ErrInvalidAccessCode
	}

	if deviceID != "" && s.flags != nil {
		submitted, flagErr := s.flags.HasSubmitted(ctx, deviceID, group)
		if flagErr != nil {
			// 标记不可用不影响答题
			logger.Log.Warn("device flag lookup failed", zap.Error(flagErr))
		} else {
			alreadySubmitted = submitted
		}
	}

	ctrl, err := flow.New(group, normalized, alreadySubmitted)
	if err != nil {
		return "", false, err
	}

	sessionID = uuid.New().String()
	s.mu.Lock()
	s.sessions[sessionID] = &session{ctrl: ctrl, deviceID: deviceID, lastSeen: time.Now()}
	s.mu.Unlock()

	return sessionID, alreadySubmitted, nil
}

func (s *SurveyService) lookup(sessionID string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	sess.lastSeen = time.Now()
	return sess, nil
}

func (s *SurveyService) RecordLikert(sessionID, itemCode string, value int) error {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return err
	}
	return sess.ctrl.RecordLikert(itemCode, value)
}

func (s *SurveyService) RecordCategory(sessionID, category string, uses bool, tools []string, other string) error {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return err
	}
	return sess.ctrl.RecordCategory(category, uses, tools, other)
}

func (s *SurveyService) RecordDemographics(sessionID string, values map[string]string) error {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return err
	}
	return sess.ctrl.RecordDemographics(values)
}

func (s *SurveyService) Advance(sessionID string) (int, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return 0, err
	}
	if err := sess.ctrl.Advance(); err != nil {
		return sess.ctrl.Step(), err
	}
	return sess.ctrl.Step(), nil
}

func (s *SurveyService) Retreat(sessionID string) (int, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return 0, err
	}
	sess.ctrl.Retreat()
	return sess.ctrl.Step(), nil
}

// SessionState 进度回显。
type SessionState struct {
	SessionID          string `json:"session_id"`
	StakeholderType    string `json:"stakeholder_type"`
	Step               int    `json:"step"`
	StepCount          int    `json:"step_count"`
	LikertAnswered     int    `json:"likert_answered"`
	CategoriesAnswered int    `json:"categories_answered"`
}

func (s *SurveyService) State(sessionID string) (*SessionState, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	likert, cats := sess.ctrl.AnsweredCounts()
	return &SessionState{
		SessionID:          sessionID,
		StakeholderType:    sess.ctrl.Group(),
		Step:               sess.ctrl.Step(),
		StepCount:          flow.StepCount,
		LikertAnswered:     likert,
		CategoriesAnswered: cats,
	}, nil
}

// Submit assembles and persists the bundle. On persistence failure the
// session (and all accumulated answers) stays alive so the user can retry;
// on success the session is dropped and the advisory device flag is set.
func (s *SurveyService) Submit(ctx context.Context, sessionID string) (string, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return "", err
	}

	bundle, err := sess.ctrl.Submit()
	if err != nil {
		return "", err
	}

	respondentID, err := s.store.SubmitSurvey(bundle)
	if err != nil {
		return "", err
	}

	group := sess.ctrl.Group()
	monitoring.SubmissionCounter.WithLabelValues(group).Inc()

	if sess.deviceID != "" && s.flags != nil {
		if flagErr := s.flags.MarkSubmitted(ctx, sess.deviceID, group); flagErr != nil {
			logger.Log.Warn("failed to set device submission flag", zap.Error(flagErr))
		}
	}

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	return respondentID, nil
}

func (s *SurveyService) HasSubmitted(ctx context.Context, deviceID, group string) (bool, error) {
	if !model.ValidStakeholderType(group) {
		return false, util.ErrUnknownStakeholder
	}
	if s.flags == nil || deviceID == "" {
		return false, nil
	}
	return s.flags.HasSubmitted(ctx, deviceID, group)
}

// ReapIdleSessions 清理闲置超过 maxIdle 的会话，返回清理数量。
func (s *SurveyService) ReapIdleSessions(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)
	reaped := 0
	s.mu.Lock()
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			reaped++
		}
	}
	s.mu.Unlock()
	return reaped
}
