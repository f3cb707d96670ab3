package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/planner/pkg/task"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListTasksTool(srv, svc)
	registerAddTaskTool(srv, svc)
	registerToggleTaskTool(srv, svc)
	registerDeleteTaskTool(srv, svc)
	registerCalendarMonthTool(srv, svc)
	registerScheduleTool(srv, svc)
	registerStampDateTool(srv, svc)
	registerSetGoalTool(srv, svc)
}

func registerListTasksTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_tasks",
		mcp.WithDescription("List planner tasks ordered by due date and time."),
		mcp.WithString("date",
			mcp.Description("Optional YYYY-MM-DD due date to filter on."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tasks, err := svc.ListTasks(ctx, request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"count": len(tasks),
			"tasks": tasks,
		})
	})
}

func registerAddTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_task",
		mcp.WithDescription("Add a task to the planner."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("What needs doing."),
		),
		mcp.WithString("date",
			mcp.Description("Due date: YYYY-MM-DD, M/D, today, tomorrow or +Nd. Defaults to today."),
		),
		mcp.WithString("time",
			mcp.Description("Time of day as HH:MM. Defaults to 09:00."),
		),
		mcp.WithString("tag",
			mcp.Description("Category of the task."),
			mcp.Enum(task.TagNames()...),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Title string `json:"title"`
			Date  string `json:"date"`
			Time  string `json:"time"`
			Tag   string `json:"tag"`
		}

		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AddTask(ctx, args.Title, args.Date, args.Time, args.Tag)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerToggleTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_task",
		mcp.WithDescription("Flip a task between open and done."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.ToggleTask(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_task",
		mcp.WithDescription("Delete a task."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := svc.DeleteTask(ctx, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"deleted": id})
	})
}

func registerCalendarMonthTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"calendar_month",
		mcp.WithDescription("Month grid in weeks starting Sunday, with stamps, tag markers and the month's goal."),
		mcp.WithString("month",
			mcp.Description("YYYY-MM, this, next or prev. Defaults to this month."),
		),
		mcp.WithString("selected",
			mcp.Description("Optional date to highlight."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		month, err := svc.Month(ctx, request.GetString("month", ""), request.GetString("selected", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(month)
	})
}

func registerScheduleTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"schedule",
		mcp.WithDescription("Tasks due on a day plus the following seven days grouped by date."),
		mcp.WithString("date",
			mcp.Description("Reference day. Defaults to today."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		window, err := svc.Schedule(ctx, request.GetString("date", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(window)
	})
}

func registerStampDateTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"stamp_date",
		mcp.WithDescription("Stamp a date as achieved, or clear its stamp."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Date to stamp."),
		),
		mcp.WithBoolean("clear",
			mcp.Description("Remove the stamp instead of adding it."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		stamped := !request.GetBool("clear", false)

		key, err := svc.SetStamp(ctx, date, stamped)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"date":    key,
			"stamped": stamped,
		})
	})
}

func registerSetGoalTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_goal",
		mcp.WithDescription("Set the goal for a month. An empty goal clears it."),
		mcp.WithString("month",
			mcp.Description("YYYY-MM, this, next or prev. Defaults to this month."),
		),
		mcp.WithString("goal",
			mcp.Required(),
			mcp.Description("Who you want to be this month."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Month string `json:"month"`
			Goal  string `json:"goal"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		key, err := svc.SetGoal(ctx, args.Month, args.Goal)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"month": key,
			"goal":  args.Goal,
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
