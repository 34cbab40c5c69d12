// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitive

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/shipchain/vaultd/fault"
)

// compiled once on first use
var shipment struct {
	sync.Once
	schema *gojsonschema.Schema
	err    error
}

func shipmentSchema() (*gojsonschema.Schema, error) {
	shipment.Do(func() {
		shipment.schema, shipment.err = gojsonschema.NewSchema(gojsonschema.NewStringLoader(shipmentSchemaText))
	})
	return shipment.schema, shipment.err
}

// ValidateShipmentFields - reject fields outside the shipment schema
func ValidateShipmentFields(fields Fields) error {
	schema, err := shipmentSchema()
	if nil != err {
		return err
	}

	if nil == fields {
		fields = Fields{}
	}
	document, err := json.Marshal(fields)
	if nil != err {
		return fault.InvalidFields
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(document))
	if nil != err {
		return fault.InvalidFields
	}
	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		messages = append(messages, schemaMessage(e))
	}
	return fault.SchemaViolation(KindShipment.String(), strings.Join(messages, ", "))
}

// render validation errors as "data<path> <reason>"
func schemaMessage(e gojsonschema.ResultError) string {
	path := "data"
	if field := e.Field(); "" != field && "(root)" != field {
		path += "." + field
	}

	switch e.Type() {
	case "additional_property_not_allowed":
		return path + " should NOT have additional properties"
	case "invalid_type":
		return fmt.Sprintf("%s should be %v", path, e.Details()["expected"])
	case "enum":
		return path + " should be equal to one of the allowed values"
	default:
		return path + " " + e.Description()
	}
}

const shipmentSchemaText = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "id": {"type": "string"},
    "version": {"type": ["string", "number"]},
    "carrier_scac": {"type": "string"},
    "forwarder_scac": {"type": "string"},
    "nvocc_scac": {"type": "string"},
    "shipper_reference": {"type": "string"},
    "forwarder_reference": {"type": "string"},
    "forwarders_shipper_id": {"type": "string"},
    "carrier_instructions": {"type": "string"},
    "pro_number": {"type": "string"},
    "master_bill": {"type": "string"},
    "house_bill": {"type": "string"},
    "subhouse_bill": {"type": "string"},
    "freight_payment_terms": {"type": "string", "enum": ["PREPAID", "COLLECT", "THIRD_PARTY"]},
    "vessel_name": {"type": "string"},
    "voyage_number": {"type": "string"},
    "mode_of_transport_code": {"type": "string", "enum": ["AIR", "SEA", "RAIL", "ROAD", "MULTIMODAL"]},
    "container_count": {"type": "integer", "minimum": 0},
    "package_qty": {"type": "integer", "minimum": 0},
    "weight_gross": {"type": "number", "minimum": 0},
    "volume": {"type": "number", "minimum": 0},
    "container_type": {"type": "string"},
    "weight_dim": {"type": "number", "minimum": 0},
    "weight_chargeable": {"type": "number", "minimum": 0},
    "docs_received_act": {"type": "string"},
    "docs_approved_act": {"type": "string"},
    "pickup_appt": {"type": "string"},
    "pickup_est": {"type": "string"},
    "pickup_act": {"type": "string"},
    "loading_est": {"type": "string"},
    "loading_act": {"type": "string"},
    "departure_est": {"type": "string"},
    "departure_act": {"type": "string"},
    "delivery_appt_act": {"type": "string"},
    "port_arrival_est": {"type": "string"},
    "port_arrival_act": {"type": "string"},
    "delivery_est": {"type": "string"},
    "delivery_act": {"type": "string"},
    "delivery_attempt": {"type": "string"},
    "cancel_requested_date_act": {"type": "string"},
    "cancel_confirmed_date_act": {"type": "string"},
    "customs_filed_date_act": {"type": "string"},
    "customs_hold_date_act": {"type": "string"},
    "customs_release_date_act": {"type": "string"},
    "containerization_type": {"type": "string"},
    "arrival_unlocode": {"type": "string"},
    "final_port_unlocode": {"type": "string"},
    "import_unlocode": {"type": "string"},
    "lading_unlocode": {"type": "string"},
    "origin_unlocode": {"type": "string"},
    "us_routed_export": {"type": "string"},
    "import_customs_mode": {"type": "string"},
    "us_export_port": {"type": "string"},
    "customer_fields": {"type": "object"},
    "ship_from_location": {"$ref": "#/definitions/location"},
    "ship_to_location": {"$ref": "#/definitions/location"},
    "final_destination_location": {"$ref": "#/definitions/location"},
    "bill_to_location": {"$ref": "#/definitions/location"}
  },
  "definitions": {
    "location": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "address_1": {"type": "string"},
        "address_2": {"type": "string"},
        "city": {"type": "string"},
        "state": {"type": "string"},
        "country": {"type": "string"},
        "postal_code": {"type": "string"},
        "phone_number": {"type": "string"},
        "fax_number": {"type": "string"}
      }
    }
  }
}`
