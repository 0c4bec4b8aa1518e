package domain

import (
	"github.com/yungbote/visualenglish-backend/internal/domain/content"
)

const (
	EditTypeQA     = content.EditTypeQA
	EditTypeDelete = content.EditTypeDelete

	FlagStatusPending  = content.FlagStatusPending
	FlagStatusReviewed = content.FlagStatusReviewed
	FlagStatusApproved = content.FlagStatusApproved
	FlagStatusRejected = content.FlagStatusRejected
)

type ContentEdit = content.ContentEdit
type FlaggedQuestion = content.FlaggedQuestion
type QAMappingEntry = content.QAMappingEntry

var ValidFlagStatus = content.ValidFlagStatus
