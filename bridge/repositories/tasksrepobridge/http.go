package tasksrepobridge

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/jrazmi/taskdesk/bridge/scaffolding/errs"
	"github.com/jrazmi/taskdesk/core/repositories/tasksrepo"
	"github.com/jrazmi/taskdesk/core/scaffolding/fop"
	"github.com/jrazmi/taskdesk/infrastructure/postgresdb"
	"github.com/jrazmi/taskdesk/infrastructure/web"
)

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	var input CreateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	task, err := b.tasksRepository.Create(ctx, MarshalCreateToRepository(input))
	if err != nil {
		return toWebError(err)
	}

	return web.NewJSONResponseWithStatus(MarshalToBridge(task), http.StatusCreated)
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	taskID, err := parseTaskID(r)
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "task id must be an integer")
	}

	task, err := b.tasksRepository.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, tasksrepo.ErrNotFound) {
			return errs.Newf(errs.NotFound, "task with id %d not found", taskID)
		}
		return toWebError(err)
	}

	return web.NewJSONResponse(MarshalToBridge(task))
}

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	page, err := fop.ParsePage(qp.Page, qp.Size)
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "invalid page: %s", err)
	}

	filter, err := parseFilter(qp)
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "%s", err)
	}

	tasks, total, err := b.tasksRepository.List(ctx, filter, page)
	if err != nil {
		return toWebError(err)
	}

	return web.NewJSONResponse(TaskListResponse{
		Tasks:    MarshalListToBridge(tasks),
		Total:    total,
		Page:     page.Number,
		PageSize: page.Size,
	})
}

func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	taskID, err := parseTaskID(r)
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "task id must be an integer")
	}

	var input UpdateTaskInput
	if err := web.Decode(r, &input); err != nil {
		return errs.Newf(errs.InvalidArgument, "decode: %s", err)
	}

	task, err := b.tasksRepository.Update(ctx, taskID, MarshalUpdateToRepository(input))
	if err != nil {
		if errors.Is(err, tasksrepo.ErrNotFound) {
			return errs.Newf(errs.NotFound, "task with id %d not found", taskID)
		}
		return toWebError(err)
	}

	return web.NewJSONResponse(MarshalToBridge(task))
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	taskID, err := parseTaskID(r)
	if err != nil {
		return errs.Newf(errs.InvalidArgument, "task id must be an integer")
	}

	if err := b.tasksRepository.Delete(ctx, taskID); err != nil {
		if errors.Is(err, tasksrepo.ErrNotFound) {
			return errs.Newf(errs.NotFound, "task with id %d not found", taskID)
		}
		return toWebError(err)
	}

	return web.NewNoContentResponse()
}

func (b *bridge) httpStats(ctx context.Context, r *http.Request) web.Encoder {
	stats, err := b.tasksRepository.Stats(ctx)
	if err != nil {
		return toWebError(err)
	}

	return web.NewJSONResponse(MarshalStatsToBridge(stats))
}

func parseTaskID(r *http.Request) (int64, error) {
	return strconv.ParseInt(web.Param(r, "task_id"), 10, 64)
}

// toWebError translates repository errors into app errors. Validation
// failures surface every field violation; storage causes are logged by the
// errors middleware but never exposed to the client.
func toWebError(err error) *errs.Error {
	var verr *tasksrepo.ValidationError
	if errors.As(err, &verr) {
		fields := make([]errs.FieldError, len(verr.Fields))
		for i, f := range verr.Fields {
			fields[i] = errs.FieldError{Field: f.Field, Rule: f.Rule, Message: f.Message}
		}
		return errs.NewFieldsError("validation failed", fields)
	}

	if errors.Is(err, postgresdb.ErrDBUnavailable) {
		return errs.Newf(errs.Unavailable, "service unavailable")
	}

	return errs.New(errs.InternalOnlyLog, err)
}
