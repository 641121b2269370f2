package simpledb

import (
	"github.com/awslabs/aws-query-go/query"
	"github.com/awslabs/aws-query-go/service/simpledb/types"
)

func serializeCreateDomainInput(v *CreateDomainInput, o *query.Object) error {
	if v.DomainName != nil {
		o.Key("DomainName").String(*v.DomainName)
	}
	return nil
}

func serializeDeleteDomainInput(v *DeleteDomainInput, o *query.Object) error {
	if v.DomainName != nil {
		o.Key("DomainName").String(*v.DomainName)
	}
	return nil
}

func serializeDomainMetadataInput(v *DomainMetadataInput, o *query.Object) error {
	if v.DomainName != nil {
		o.Key("DomainName").String(*v.DomainName)
	}
	return nil
}

func serializeListDomainsInput(v *ListDomainsInput, o *query.Object) error {
	if v.MaxNumberOfDomains != nil {
		o.Key("MaxNumberOfDomains").Integer(*v.MaxNumberOfDomains)
	}
	if v.NextToken != nil {
		o.Key("NextToken").String(*v.NextToken)
	}
	return nil
}

func serializeSelectInput(v *SelectInput, o *query.Object) error {
	if v.SelectExpression != nil {
		o.Key("SelectExpression").String(*v.SelectExpression)
	}
	if v.NextToken != nil {
		o.Key("NextToken").String(*v.NextToken)
	}
	if v.ConsistentRead != nil {
		o.Key("ConsistentRead").Boolean(*v.ConsistentRead)
	}
	return nil
}

func serializeGetAttributesInput(v *GetAttributesInput, o *query.Object) error {
	if v.DomainName != nil {
		o.Key("DomainName").String(*v.DomainName)
	}
	if v.ItemName != nil {
		o.Key("ItemName").String(*v.ItemName)
	}
	if len(v.AttributeNames) > 0 {
		a := o.FlatKey("AttributeName").Array("")
		for _, name := range v.AttributeNames {
			a.Value().String(name)
		}
	}
	if v.ConsistentRead != nil {
		o.Key("ConsistentRead").Boolean(*v.ConsistentRead)
	}
	return nil
}

func serializePutAttributesInput(v *PutAttributesInput, o *query.Object) error {
	if v.DomainName != nil {
		o.Key("DomainName").String(*v.DomainName)
	}
	if v.ItemName != nil {
		o.Key("ItemName").String(*v.ItemName)
	}
	if v.Attributes != nil {
		serializeReplaceableAttributeList(v.Attributes, o.FlatKey("Attribute").Array(""))
	}
	if v.Expected != nil {
		serializeUpdateCondition(v.Expected, o.Key("Expected").Object())
	}
	return nil
}

func serializeDeleteAttributesInput(v *DeleteAttributesInput, o *query.Object) error {
	if v.DomainName != nil {
		o.Key("DomainName").String(*v.DomainName)
	}
	if v.ItemName != nil {
		o.Key("ItemName").String(*v.ItemName)
	}
	if len(v.Attributes) > 0 {
		a := o.FlatKey("Attribute").Array("")
		for i := range v.Attributes {
			serializeAttribute(&v.Attributes[i], a.Value().Object())
		}
	}
	if v.Expected != nil {
		serializeUpdateCondition(v.Expected, o.Key("Expected").Object())
	}
	return nil
}

func serializeBatchPutAttributesInput(v *BatchPutAttributesInput, o *query.Object) error {
	if v.DomainName != nil {
		o.Key("DomainName").String(*v.DomainName)
	}
	if v.Items != nil {
		a := o.FlatKey("Item").Array("")
		for i := range v.Items {
			serializeReplaceableItem(&v.Items[i], a.Value().Object())
		}
	}
	return nil
}

func serializeReplaceableItem(v *types.ReplaceableItem, o *query.Object) {
	if v.Name != nil {
		o.Key("ItemName").String(*v.Name)
	}
	if v.Attributes != nil {
		serializeReplaceableAttributeList(v.Attributes, o.FlatKey("Attribute").Array(""))
	}
}

func serializeReplaceableAttributeList(v []types.ReplaceableAttribute, a *query.Array) {
	for i := range v {
		o := a.Value().Object()
		if v[i].Name != nil {
			o.Key("Name").String(*v[i].Name)
		}
		if v[i].Value != nil {
			o.Key("Value").String(*v[i].Value)
		}
		if v[i].Replace != nil {
			o.Key("Replace").Boolean(*v[i].Replace)
		}
	}
}

func serializeAttribute(v *types.Attribute, o *query.Object) {
	if v.Name != nil {
		o.Key("Name").String(*v.Name)
	}
	if v.Value != nil {
		o.Key("Value").String(*v.Value)
	}
}

func serializeUpdateCondition(v *types.UpdateCondition, o *query.Object) {
	if v.Name != nil {
		o.Key("Name").String(*v.Name)
	}
	if v.Value != nil {
		o.Key("Value").String(*v.Value)
	}
	if v.Exists != nil {
		o.Key("Exists").Boolean(*v.Exists)
	}
}
