package util

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidAccessCode     = errors.New("invalid access code")
	ErrUnknownStakeholder    = errors.New("unknown stakeholder type")
	ErrSessionNotFound       = errors.New("survey session not found")
	ErrUnknownItemCode       = errors.New("unknown item code for stakeholder type")
	ErrUnknownCategory       = errors.New("unknown tool category")
	ErrValueOutOfRange       = errors.New("likert value must be between 1 and 7")
	ErrUnknownDemographField = errors.New("unknown demographic field")
)

// ValidationError 某一节未答完整。Missing 按 构念->条目 顺序列出缺失标识。
// 会话状态保持不变，用户补答后可重试。
type ValidationError struct {
	Section string
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("section %s incomplete, missing: %s", e.Section, strings.Join(e.Missing, ", "))
}

// InvalidStateError 调用方误用（如未到最后一步就提交）。
type InvalidStateError struct {
	Op   string
	Step int
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("operation %s not allowed at step %d", e.Op, e.Step)
}

// PersistenceError 后端读写失败，原样上抛，由用户决定是否重新提交。
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ConfigurationError 后端凭证缺失。Diagnostics 只含布尔/长度等非敏感信息。
type ConfigurationError struct {
	Message     string
	Diagnostics map[string]interface{}
}

func (e *ConfigurationError) Error() string {
	return e.Message
}
