package dto

import (
	"time"

	"staysync/internal/domains/reconciliation/model"
	"staysync/shared/constant"
	"staysync/shared/failure"
	"staysync/shared/timezone"
)

type ImportRequest struct {
	ArrivalFrom  string `json:"arrival_from"  validate:"omitempty,stay_date"`
	ArrivalTo    string `json:"arrival_to"    validate:"omitempty,stay_date"`
	UpdatedSince string `json:"updated_since" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

func (r ImportRequest) ToFilter() (model.ImportFilter, error) {
	filter := model.ImportFilter{}

	var err error

	if r.ArrivalFrom != constant.Empty {
		if filter.ArrivalFrom, err = timezone.ParseDate(r.ArrivalFrom); err != nil {
			return filter, failure.NewValidationError("arrival_from", err.Error()) //nolint:wrapcheck
		}
	}

	if r.ArrivalTo != constant.Empty {
		if filter.ArrivalTo, err = timezone.ParseDate(r.ArrivalTo); err != nil {
			return filter, failure.NewValidationError("arrival_to", err.Error()) //nolint:wrapcheck
		}
	}

	if !filter.ArrivalFrom.IsZero() && !filter.ArrivalTo.IsZero() && filter.ArrivalTo.Before(filter.ArrivalFrom) {
		return filter, failure.NewValidationError("arrival_to", "must not be before arrival_from") //nolint:wrapcheck
	}

	if r.UpdatedSince != constant.Empty {
		if filter.UpdatedSince, err = timezone.Parse(time.RFC3339, r.UpdatedSince); err != nil {
			return filter, failure.NewValidationError("updated_since", err.Error()) //nolint:wrapcheck
		}
	}

	return filter, nil
}
