package planzajec

import (
	"context"
	"fmt"
	"net/http"
	"planzajec-backend/lib/agenda"
	"planzajec-backend/lib/schedule"
	"planzajec-backend/lib/scrapers/uek"
	"planzajec-backend/lib/serviceutil"
	"time"

	"connectrpc.com/connect"
)

const ServiceName = "planzajec.v1.PlanzajecService"

const (
	GetSchedulesProcedure      = "/" + ServiceName + "/GetSchedules"
	GetCategoriesProcedure     = "/" + ServiceName + "/GetCategories"
	GetCategoryDetailProcedure = "/" + ServiceName + "/GetCategoryDetail"
	RefreshClockProcedure      = "/" + ServiceName + "/RefreshClock"
)

type GetSchedulesRequest struct {
	// IDs is a slash separated list of composite ids, eg. "G1234/N55".
	IDs    string `json:"ids"`
	Period string `json:"period"`
	View   string `json:"view"`
}

type GetSchedulesResponse struct {
	Schedules []schedule.Schedule `json:"schedules"`
	View      agenda.Mode         `json:"view"`
	Days      []agenda.Day        `json:"days"`
	Now       time.Time           `json:"now"`
}

type GetCategoriesRequest struct {
	Type   string `json:"type"`
	Search string `json:"search"`
}

type GetCategoriesResponse struct {
	Categories []uek.Category `json:"categories"`
}

type GetCategoryDetailRequest struct {
	Type   string `json:"type"`
	Label  string `json:"label"`
	Filter Filter `json:"filter"`
}

type GetCategoryDetailResponse struct {
	Type    schedule.Type `json:"type"`
	Label   string        `json:"label"`
	Entries []PickerEntry `json:"entries"`
}

type RefreshClockRequest struct{}

type RefreshClockResponse struct {
	Now time.Time `json:"now"`
}

func invalidArgument(err error) error {
	return connect.NewError(connect.CodeInvalidArgument, err)
}

func upstreamError(err error) error {
	return connect.NewError(connect.CodeUnavailable, err)
}

func (s Service) GetSchedules(ctx context.Context, req *connect.Request[GetSchedulesRequest]) (*connect.Response[GetSchedulesResponse], error) {
	refs, err := ParseScheduleRefs(req.Msg.IDs)
	if err != nil {
		return nil, invalidArgument(err)
	}
	period, err := ParsePeriod(req.Msg.Period)
	if err != nil {
		return nil, invalidArgument(err)
	}
	mode, err := agenda.ParseMode(req.Msg.View)
	if err != nil {
		return nil, invalidArgument(err)
	}

	schedules := s.FetchSchedules(ctx, refs, period)
	return connect.NewResponse(&GetSchedulesResponse{
		Schedules: schedules,
		View:      mode,
		Days:      s.Group(schedules, mode),
		Now:       s.clock.Now(),
	}), nil
}

func (s Service) GetCategories(ctx context.Context, req *connect.Request[GetCategoriesRequest]) (*connect.Response[GetCategoriesResponse], error) {
	var typ schedule.Type
	if req.Msg.Type != "" {
		parsed, err := schedule.ParseType(req.Msg.Type)
		if err != nil {
			return nil, invalidArgument(err)
		}
		typ = parsed
	}

	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, upstreamError(err)
	}

	filtered := make([]uek.Category, 0, len(categories))
	for _, c := range categories {
		if typ == "" || c.Type == typ {
			filtered = append(filtered, c)
		}
	}
	return connect.NewResponse(&GetCategoriesResponse{
		Categories: SearchCategories(filtered, req.Msg.Search),
	}), nil
}

func (s Service) GetCategoryDetail(ctx context.Context, req *connect.Request[GetCategoryDetailRequest]) (*connect.Response[GetCategoryDetailResponse], error) {
	typ, err := schedule.ParseType(req.Msg.Type)
	if err != nil {
		return nil, invalidArgument(err)
	}
	if req.Msg.Label == "" {
		return nil, invalidArgument(fmt.Errorf("category label is required"))
	}

	detail, err := s.CategoryDetail(ctx, typ, req.Msg.Label)
	if err != nil {
		return nil, upstreamError(err)
	}
	return connect.NewResponse(&GetCategoryDetailResponse{
		Type:    detail.Type,
		Label:   detail.Label,
		Entries: FilterEntries(detail.Entries, req.Msg.Filter),
	}), nil
}

func (s Service) RefreshClockRPC(ctx context.Context, req *connect.Request[RefreshClockRequest]) (*connect.Response[RefreshClockResponse], error) {
	return connect.NewResponse(&RefreshClockResponse{Now: s.RefreshClock()}), nil
}

// Register mounts the rpc procedures and the calendar export on mux.
func Register(mux *http.ServeMux, s Service, opts ...connect.HandlerOption) {
	opts = append([]connect.HandlerOption{connect.WithCodec(serviceutil.JSONCodec)}, opts...)

	mux.Handle(GetSchedulesProcedure, connect.NewUnaryHandler(GetSchedulesProcedure, s.GetSchedules, opts...))
	mux.Handle(GetCategoriesProcedure, connect.NewUnaryHandler(GetCategoriesProcedure, s.GetCategories, opts...))
	mux.Handle(GetCategoryDetailProcedure, connect.NewUnaryHandler(GetCategoryDetailProcedure, s.GetCategoryDetail, opts...))
	mux.Handle(RefreshClockProcedure, connect.NewUnaryHandler(RefreshClockProcedure, s.RefreshClockRPC, opts...))
	mux.Handle("GET "+CalendarPath+"{ids...}", CalendarHandler(s))
}

// Client calls a remote Service over connect.
type Client struct {
	getSchedules      *connect.Client[GetSchedulesRequest, GetSchedulesResponse]
	getCategories     *connect.Client[GetCategoriesRequest, GetCategoriesResponse]
	getCategoryDetail *connect.Client[GetCategoryDetailRequest, GetCategoryDetailResponse]
	refreshClock      *connect.Client[RefreshClockRequest, RefreshClockResponse]
}

func NewClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) Client {
	opts = append([]connect.ClientOption{connect.WithCodec(serviceutil.JSONCodec)}, opts...)
	return Client{
		getSchedules:      connect.NewClient[GetSchedulesRequest, GetSchedulesResponse](httpClient, baseURL+GetSchedulesProcedure, opts...),
		getCategories:     connect.NewClient[GetCategoriesRequest, GetCategoriesResponse](httpClient, baseURL+GetCategoriesProcedure, opts...),
		getCategoryDetail: connect.NewClient[GetCategoryDetailRequest, GetCategoryDetailResponse](httpClient, baseURL+GetCategoryDetailProcedure, opts...),
		refreshClock:      connect.NewClient[RefreshClockRequest, RefreshClockResponse](httpClient, baseURL+RefreshClockProcedure, opts...),
	}
}

func (c Client) GetSchedules(ctx context.Context, req *GetSchedulesRequest) (*GetSchedulesResponse, error) {
	res, err := c.getSchedules.CallUnary(ctx, connect.NewRequest(req))
	if err != nil {
		return nil, err
	}
	return res.Msg, nil
}

func (c Client) GetCategories(ctx context.Context, req *GetCategoriesRequest) (*GetCategoriesResponse, error) {
	res, err := c.getCategories.CallUnary(ctx, connect.NewRequest(req))
	if err != nil {
		return nil, err
	}
	return res.Msg, nil
}

func (c Client) GetCategoryDetail(ctx context.Context, req *GetCategoryDetailRequest) (*GetCategoryDetailResponse, error) {
	res, err := c.getCategoryDetail.CallUnary(ctx, connect.NewRequest(req))
	if err != nil {
		return nil, err
	}
	return res.Msg, nil
}

func (c Client) RefreshClock(ctx context.Context) (time.Time, error) {
	res, err := c.refreshClock.CallUnary(ctx, connect.NewRequest(&RefreshClockRequest{}))
	if err != nil {
		return time.Time{}, err
	}
	return res.Msg.Now, nil
}
