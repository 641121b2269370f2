package rds

import (
	"context"

	smithy "github.com/awslabs/aws-query-go"
	"github.com/awslabs/aws-query-go/internal/awsquery"
	"github.com/awslabs/aws-query-go/middleware"
	"github.com/awslabs/aws-query-go/query"
	"github.com/awslabs/aws-query-go/service/rds/types"
	smithyxml "github.com/awslabs/aws-query-go/xml"
)

// ModifyDBParameterGroup modifies the parameters of a DB parameter group. At
// most 20 parameters can be modified in a single request.
func (c *Client) ModifyDBParameterGroup(ctx context.Context, params *ModifyDBParameterGroupInput, optFns ...func(*Options)) (*ModifyDBParameterGroupOutput, error) {
	out, metadata, err := invoke(ctx, c, modifyDBParameterGroup, params, optFns)
	if err != nil {
		return nil, err
	}
	out.ResultMetadata = metadata
	return out, nil
}

// ModifyDBParameterGroupInput is the input of ModifyDBParameterGroup.
type ModifyDBParameterGroupInput struct {
	// The name of the DB parameter group.
	//
	// This member is required.
	DBParameterGroupName *string

	// The parameters to modify, ParameterName, ParameterValue and ApplyMethod
	// are required for each.
	//
	// This member is required.
	Parameters []types.Parameter
}

// ModifyDBParameterGroupOutput is the result of ModifyDBParameterGroup.
type ModifyDBParameterGroupOutput struct {
	// The name of the modified DB parameter group.
	DBParameterGroupName *string

	ResultMetadata middleware.Metadata
}

// ModifyDBParameterGroupResultShape unmarshals the ModifyDBParameterGroupResult
// element of a ModifyDBParameterGroup response.
var ModifyDBParameterGroupResultShape = smithyxml.NewShape[ModifyDBParameterGroupOutput]("ModifyDBParameterGroupResult",
	smithyxml.Member("DBParameterGroupName", smithyxml.String, func(v *ModifyDBParameterGroupOutput, s *string) {
		v.DBParameterGroupName = s
	}),
)

var modifyDBParameterGroup = awsquery.Operation[ModifyDBParameterGroupInput, ModifyDBParameterGroupOutput]{
	Action:    "ModifyDBParameterGroup",
	Serialize: serializeModifyDBParameterGroupInput,
	Validate:  validateModifyDBParameterGroupInput,
	Result:    ModifyDBParameterGroupResultShape,
}

func serializeModifyDBParameterGroupInput(v *ModifyDBParameterGroupInput, o *query.Object) error {
	if v.DBParameterGroupName != nil {
		o.Key("DBParameterGroupName").String(*v.DBParameterGroupName)
	}
	if v.Parameters != nil {
		serializeParameterList(v.Parameters, o.Key("Parameters").Array("member"))
	}
	return nil
}

func serializeParameterList(v []types.Parameter, a *query.Array) {
	for i := range v {
		serializeParameter(&v[i], a.Value().Object())
	}
}

func serializeParameter(v *types.Parameter, o *query.Object) {
	if v.ParameterName != nil {
		o.Key("ParameterName").String(*v.ParameterName)
	}
	if v.ParameterValue != nil {
		o.Key("ParameterValue").String(*v.ParameterValue)
	}
	if v.Description != nil {
		o.Key("Description").String(*v.Description)
	}
	if v.Source != nil {
		o.Key("Source").String(*v.Source)
	}
	if v.ApplyType != nil {
		o.Key("ApplyType").String(*v.ApplyType)
	}
	if v.DataType != nil {
		o.Key("DataType").String(*v.DataType)
	}
	if v.AllowedValues != nil {
		o.Key("AllowedValues").String(*v.AllowedValues)
	}
	if v.IsModifiable != nil {
		o.Key("IsModifiable").Boolean(*v.IsModifiable)
	}
	if v.MinimumEngineVersion != nil {
		o.Key("MinimumEngineVersion").String(*v.MinimumEngineVersion)
	}
	if len(v.ApplyMethod) > 0 {
		o.Key("ApplyMethod").String(string(v.ApplyMethod))
	}
}

func validateModifyDBParameterGroupInput(v *ModifyDBParameterGroupInput) error {
	invalidParams := smithy.InvalidParamsError{Context: "ModifyDBParameterGroupInput"}
	if v.DBParameterGroupName == nil {
		invalidParams.Add(smithy.NewErrParamRequired("DBParameterGroupName"))
	}
	if v.Parameters == nil {
		invalidParams.Add(smithy.NewErrParamRequired("Parameters"))
	}
	if invalidParams.Len() > 0 {
		return &invalidParams
	}
	return nil
}
