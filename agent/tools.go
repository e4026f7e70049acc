package agent

import (
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// Tool names exposed to the LLM.
const (
	ToolVerifyCustomer        = "verify_customer"
	ToolCreateCustomer        = "create_customer"
	ToolVerifyOrderItem       = "verify_order_item"
	ToolCreateOrder           = "create_order"
	ToolFetchMenuCategories   = "fetch_menu_categories"
	ToolFetchItemsForCategory = "fetch_items_for_category"
	ToolFetchCompleteMenu     = "fetch_complete_menu"
	ToolFetchAddons           = "fetch_addons"
	ToolRecordAddons          = "record_addons"
	ToolFetchRestaurantInfo   = "fetch_restaurant_info"
	ToolEndCall               = "end_call"
)

// Tools returns the function definitions for one LLM turn. Once the
// in-progress item is confirmed, verify_order_item is withheld so the
// model cannot re-confirm the same item and loop.
func Tools(itemConfirmed bool) []openai.Tool {
	tools := []openai.Tool{
		fn(ToolVerifyCustomer, "Verify if a customer exists by phone number.",
			map[string]jsonschema.Definition{
				"name":  {Type: jsonschema.String, Description: "The name of the customer"},
				"phone": {Type: jsonschema.String, Description: "The phone number of the customer, digits only"},
			}, []string{"phone"}),
		fn(ToolCreateCustomer, "Create a new customer in the database.",
			map[string]jsonschema.Definition{
				"name":  {Type: jsonschema.String, Description: "The name of the customer"},
				"phone": {Type: jsonschema.String, Description: "The phone number of the customer, digits only"},
			}, []string{"name", "phone"}),
		fn(ToolVerifyOrderItem, "Verify a menu item the customer wants to order, with any add-ons they already named.",
			map[string]jsonschema.Definition{
				"item_name": {Type: jsonschema.String, Description: "The name of the menu item to verify"},
				"category":  {Type: jsonschema.String, Description: "The category of the menu item (burger, pizza, etc.)"},
				"add_ons": {Type: jsonschema.Array, Description: "Add-ons the customer already asked for",
					Items: &jsonschema.Definition{Type: jsonschema.String}},
			}, []string{"item_name", "category"}),
		fn(ToolCreateOrder, "Create the order once the customer confirms it is complete. Decouple units with different add-ons into separate entries.",
			map[string]jsonschema.Definition{
				"customer_name":  {Type: jsonschema.String},
				"customer_phone": {Type: jsonschema.String, Description: "Digits only"},
				"order_items": {Type: jsonschema.Array, Items: &jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"item_name": {Type: jsonschema.String},
						"quantity":  {Type: jsonschema.Integer},
						"add_ons": {Type: jsonschema.Array,
							Items: &jsonschema.Definition{Type: jsonschema.String}},
						"special_instructions": {Type: jsonschema.String},
					},
				}},
				"special_instructions": {Type: jsonschema.String},
			}, []string{"customer_name", "customer_phone", "order_items"}),
		fn(ToolFetchMenuCategories, "Fetch all available menu categories.",
			map[string]jsonschema.Definition{}, nil),
		fn(ToolFetchItemsForCategory, "Fetch available menu items for a category the customer chose.",
			map[string]jsonschema.Definition{
				"category": {Type: jsonschema.String},
			}, []string{"category"}),
		fn(ToolFetchCompleteMenu, "Fetch the whole menu organized by category.",
			map[string]jsonschema.Definition{}, nil),
		fn(ToolFetchAddons, "Get available add-ons for the chosen item's category and start the add-on selection flow.",
			map[string]jsonschema.Definition{
				"category": {Type: jsonschema.String},
			}, []string{"category"}),
		fn(ToolRecordAddons, "Record the customer's add-on selection during the add-on selection flow.",
			map[string]jsonschema.Definition{
				"addon_type": {Type: jsonschema.String, Description: "size, sauce, topping or other"},
				"selection": {Type: jsonschema.Array,
					Items: &jsonschema.Definition{Type: jsonschema.String}},
			}, []string{"addon_type", "selection"}),
		fn(ToolFetchRestaurantInfo, "Fetch restaurant information including address, phone, and hours.",
			map[string]jsonschema.Definition{}, nil),
		fn(ToolEndCall, "End the call only when the user explicitly requests it.",
			map[string]jsonschema.Definition{
				"message": {Type: jsonschema.String, Description: "The goodbye message before hanging up"},
			}, []string{"message"}),
	}

	if !itemConfirmed {
		return tools
	}
	out := tools[:0]
	for _, t := range tools {
		if t.Function.Name == ToolVerifyOrderItem {
			continue
		}
		out = append(out, t)
	}
	return out
}

func fn(name, description string, props map[string]jsonschema.Definition, required []string) openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        name,
			Description: description,
			Parameters: jsonschema.Definition{
				Type:       jsonschema.Object,
				Properties: props,
				Required:   required,
			},
		},
	}
}
