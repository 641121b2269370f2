package simpledb

import (
	"fmt"

	smithy "github.com/awslabs/aws-query-go"
	"github.com/awslabs/aws-query-go/service/simpledb/types"
)

func validateCreateDomainInput(v *CreateDomainInput) error {
	invalidParams := smithy.InvalidParamsError{Context: "CreateDomainInput"}
	if v.DomainName == nil {
		invalidParams.Add(smithy.NewErrParamRequired("DomainName"))
	}
	if invalidParams.Len() > 0 {
		return &invalidParams
	}
	return nil
}

func validateDeleteDomainInput(v *DeleteDomainInput) error {
	invalidParams := smithy.InvalidParamsError{Context: "DeleteDomainInput"}
	if v.DomainName == nil {
		invalidParams.Add(smithy.NewErrParamRequired("DomainName"))
	}
	if invalidParams.Len() > 0 {
		return &invalidParams
	}
	return nil
}

func validateDomainMetadataInput(v *DomainMetadataInput) error {
	invalidParams := smithy.InvalidParamsError{Context: "DomainMetadataInput"}
	if v.DomainName == nil {
		invalidParams.Add(smithy.NewErrParamRequired("DomainName"))
	}
	if invalidParams.Len() > 0 {
		return &invalidParams
	}
	return nil
}

func validateSelectInput(v *SelectInput) error {
	invalidParams := smithy.InvalidParamsError{Context: "SelectInput"}
	if v.SelectExpression == nil {
		invalidParams.Add(smithy.NewErrParamRequired("SelectExpression"))
	}
	if invalidParams.Len() > 0 {
		return &invalidParams
	}
	return nil
}

func validateGetAttributesInput(v *GetAttributesInput) error {
	invalidParams := smithy.InvalidParamsError{Context: "GetAttributesInput"}
	if v.DomainName == nil {
		invalidParams.Add(smithy.NewErrParamRequired("DomainName"))
	}
	if v.ItemName == nil {
		invalidParams.Add(smithy.NewErrParamRequired("ItemName"))
	}
	if invalidParams.Len() > 0 {
		return &invalidParams
	}
	return nil
}

func validatePutAttributesInput(v *PutAttributesInput) error {
	invalidParams := smithy.InvalidParamsError{Context: "PutAttributesInput"}
	if v.DomainName == nil {
		invalidParams.Add(smithy.NewErrParamRequired("DomainName"))
	}
	if v.ItemName == nil {
		invalidParams.Add(smithy.NewErrParamRequired("ItemName"))
	}
	if v.Attributes == nil {
		invalidParams.Add(smithy.NewErrParamRequired("Attributes"))
	}
	for i := range v.Attributes {
		if err := validateReplaceableAttribute(&v.Attributes[i]); err != nil {
			invalidParams.AddNested(fmt.Sprintf("Attributes[%d]", i), *err)
		}
	}
	if invalidParams.Len() > 0 {
		return &invalidParams
	}
	return nil
}

func validateDeleteAttributesInput(v *DeleteAttributesInput) error {
	invalidParams := smithy.InvalidParamsError{Context: "DeleteAttributesInput"}
	if v.DomainName == nil {
		invalidParams.Add(smithy.NewErrParamRequired("DomainName"))
	}
	if v.ItemName == nil {
		invalidParams.Add(smithy.NewErrParamRequired("ItemName"))
	}
	for i := range v.Attributes {
		if v.Attributes[i].Name == nil {
			invalidParams.Add(smithy.NewErrParamRequired(fmt.Sprintf("Attributes[%d].Name", i)))
		}
	}
	if invalidParams.Len() > 0 {
		return &invalidParams
	}
	return nil
}

func validateBatchPutAttributesInput(v *BatchPutAttributesInput) error {
	invalidParams := smithy.InvalidParamsError{Context: "BatchPutAttributesInput"}
	if v.DomainName == nil {
		invalidParams.Add(smithy.NewErrParamRequired("DomainName"))
	}
	if v.Items == nil {
		invalidParams.Add(smithy.NewErrParamRequired("Items"))
	}
	for i := range v.Items {
		item := &v.Items[i]
		if item.Name == nil {
			invalidParams.Add(smithy.NewErrParamRequired(fmt.Sprintf("Items[%d].Name", i)))
		}
		if item.Attributes == nil {
			invalidParams.Add(smithy.NewErrParamRequired(fmt.Sprintf("Items[%d].Attributes", i)))
		}
		for j := range item.Attributes {
			if err := validateReplaceableAttribute(&item.Attributes[j]); err != nil {
				invalidParams.AddNested(fmt.Sprintf("Items[%d].Attributes[%d]", i, j), *err)
			}
		}
	}
	if invalidParams.Len() > 0 {
		return &invalidParams
	}
	return nil
}

func validateReplaceableAttribute(v *types.ReplaceableAttribute) *smithy.InvalidParamsError {
	invalidParams := smithy.InvalidParamsError{Context: "ReplaceableAttribute"}
	if v.Name == nil {
		invalidParams.Add(smithy.NewErrParamRequired("Name"))
	}
	if v.Value == nil {
		invalidParams.Add(smithy.NewErrParamRequired("Value"))
	}
	if invalidParams.Len() > 0 {
		return &invalidParams
	}
	return nil
}
