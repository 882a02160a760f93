package v1

// OData carries the paging query options shared by the admin list endpoints.
type OData struct {
	Top   int  `form:"$top"`
	Skip  int  `form:"$skip"`
	Count bool `form:"$count"`
}
