package agent

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/ujjwal-9/ordering-agent/entity"
	"github.com/ujjwal-9/ordering-agent/utils"
)

const (
	msgRepositoryTrouble = "I'm sorry, I'm having trouble looking that up right now. Could you try again in a moment?"
	msgOrderTrouble      = "I'm sorry, there was an error processing your order. Please try again or contact customer support."
)

// ToolCall is one structured function call emitted by the LLM.
type ToolCall struct {
	ID        string
	Name      string
	Arguments json.RawMessage
}

// ToolHandler executes tool calls against the catalog and order stores,
// mutating the per-call Memory. Repository failures never escape: they
// are logged and turned into an apologetic reply with the call kept
// alive.
type ToolHandler struct {
	catalog    Catalog
	customers  CustomerStore
	orders     OrderStore
	memory     *Memory
	fromNumber string
	convID     string
}

func NewToolHandler(catalog Catalog, customers CustomerStore, orders OrderStore, memory *Memory, convID string) *ToolHandler {
	return &ToolHandler{
		catalog:   catalog,
		customers: customers,
		orders:    orders,
		memory:    memory,
		convID:    convID,
	}
}

func (h *ToolHandler) SetFromNumber(phone string) {
	h.fromNumber = phone
}

// Handle dispatches a tool call to its handler and wraps the reply.
// EndCall can only come out of the end_call tool.
func (h *ToolHandler) Handle(call ToolCall, responseID int) Response {
	h.memory.ToolChain = append(h.memory.ToolChain, call.Name)
	log.Printf("conv=%s tool=%s args=%s", h.convID, call.Name, string(call.Arguments))

	handlers := map[string]func(json.RawMessage) (string, bool){
		ToolVerifyCustomer:        h.handleVerifyCustomer,
		ToolCreateCustomer:        h.handleCreateCustomer,
		ToolVerifyOrderItem:       h.handleVerifyOrderItem,
		ToolCreateOrder:           h.handleCreateOrder,
		ToolFetchMenuCategories:   h.handleFetchMenuCategories,
		ToolFetchItemsForCategory: h.handleFetchItemsForCategory,
		ToolFetchCompleteMenu:     h.handleFetchCompleteMenu,
		ToolFetchAddons:           h.handleFetchAddons,
		ToolRecordAddons:          h.handleRecordAddons,
		ToolFetchRestaurantInfo:   h.handleFetchRestaurantInfo,
		ToolEndCall:               h.handleEndCall,
	}

	fn, ok := handlers[call.Name]
	var content string
	var endCall bool
	if !ok {
		content = "I'm not sure how to handle that request. Can you try something else?"
	} else {
		content, endCall = fn(call.Arguments)
	}

	h.memory.AddToolResult(call.ID, content)
	return NewResponse(responseID, content, endCall)
}

func (h *ToolHandler) handleVerifyCustomer(raw json.RawMessage) (string, bool) {
	var args VerifyCustomerArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return "I'm having trouble verifying your information. Could you please try again?", false
	}

	phone := args.Phone.String()
	if phone == "" {
		phone = h.fromNumber
	}
	if phone == "" {
		return "Could you give me your 10-digit phone number so I can look you up?", false
	}
	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return "Phone number must be exactly 10 digits long. Please try again.", false
	}

	h.memory.UpdateCustomer(args.Name, "")

	customer, err := h.customers.GetByPhone(normalized)
	if err != nil {
		log.Printf("conv=%s verify_customer lookup failed: %v", h.convID, err)
		return "I'm having trouble verifying your information. Could you please try again?", false
	}

	if customer != nil {
		name := args.Name
		if name == "" {
			name = customer.Name
		}
		h.memory.UpdateCustomer(name, normalized)
		h.memory.VerifiedCustomer = true
		return fmt.Sprintf("Welcome back, %s! What would you like to order today?", name), false
	}

	h.memory.UpdateCustomer("", normalized)
	return fmt.Sprintf("I don't see your number in our system. I have your phone number as %s, is that correct?", normalized), false
}

func (h *ToolHandler) handleCreateCustomer(raw json.RawMessage) (string, bool) {
	var args CreateCustomerArgs
	if err := json.Unmarshal(raw, &args); err != nil || args.Name == "" {
		return "I'm having trouble registering your information. Could you please try again with your name and phone number?", false
	}

	phone := args.Phone.String()
	if phone == "" {
		phone = h.fromNumber
	}
	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return "Phone number must be exactly 10 digits long. Please try again.", false
	}

	existing, err := h.customers.GetByPhone(normalized)
	if err != nil {
		log.Printf("conv=%s create_customer lookup failed: %v", h.convID, err)
		return "I'm having trouble registering your information. Could you please try again?", false
	}
	h.memory.UpdateCustomer(args.Name, normalized)
	h.memory.VerifiedCustomer = true

	if existing != nil {
		return fmt.Sprintf("Thank you, %s! What would you like to order today?", args.Name), false
	}
	if _, err := h.customers.Create(args.Name, normalized); err != nil {
		log.Printf("conv=%s create_customer insert failed: %v", h.convID, err)
		return "I'm having trouble registering your information. Could you please try again?", false
	}
	return fmt.Sprintf("Thank you, %s! I've registered you as a new customer. What would you like to order today?", args.Name), false
}

func (h *ToolHandler) handleVerifyOrderItem(raw json.RawMessage) (string, bool) {
	var args VerifyOrderItemArgs
	if err := json.Unmarshal(raw, &args); err != nil || args.ItemName == "" {
		return "Which item would you like to order?", false
	}

	menu, err := h.catalog.GetMenu("")
	if err != nil {
		log.Printf("conv=%s verify_order_item menu fetch failed: %v", h.convID, err)
		return msgRepositoryTrouble, false
	}

	item := MatchMenuItem(args.ItemName, menu, args.Category)
	if item == nil {
		suggestions := SimilarItems(args.ItemName, menu, "", 5)
		if len(suggestions) > 0 {
			names := make([]string, len(suggestions))
			for i, s := range suggestions {
				names[i] = s.Name
			}
			return fmt.Sprintf("Sorry, we don't have %s. Did you mean: %s?", args.ItemName, strings.Join(names, ", ")), false
		}
		return fmt.Sprintf("Sorry, we don't have %s on our menu. Would you like to see our available options?", args.ItemName), false
	}
	if !item.IsAvailable {
		return fmt.Sprintf("Sorry, %s is currently unavailable. Would you like to choose something else?", item.Name), false
	}

	available, err := h.catalog.GetAddOns(item.Category)
	if err != nil {
		log.Printf("conv=%s verify_order_item add-on fetch failed: %v", h.convID, err)
		return msgRepositoryTrouble, false
	}

	rec := Reconcile(args.AddOns, available)
	if len(rec.Invalid) > 0 {
		return fmt.Sprintf("Sorry, we don't have the %s add ons. Would you like to choose different add ons?", strings.Join(rec.Invalid, ", ")), false
	}

	// Exact match, available, no invalid add-ons: the item is confirmed
	// and the add-on flow starts at the first type not already covered.
	h.memory.CurrentItem = &args
	h.memory.ItemConfirmed = true

	flow := NewAddOnFlow(GroupByType(available), rec.SelectedTypes)
	for _, sel := range rec.Selected {
		flow.Selections[sel.Type] = append(flow.Selections[sel.Type], sel.Name)
	}
	h.memory.Flow = flow

	lead := fmt.Sprintf("Great! I've added the %s to your order.", item.Name)
	if flow.Complete() {
		return lead + " Is that your complete order, or would you like anything else?", false
	}
	current := flow.Current()
	return lead + "\n" + renderAddonPrompt(fmt.Sprintf("Let's pick a %s:", current), current, flow.Options[current]), false
}

func (h *ToolHandler) handleFetchAddons(raw json.RawMessage) (string, bool) {
	var args FetchAddonsArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return "Which item are we choosing add-ons for?", false
	}

	available, err := h.catalog.GetAddOns(args.Category)
	if err != nil {
		log.Printf("conv=%s fetch_addons failed: %v", h.convID, err)
		return "I'm having trouble getting the add-on options. Would you like to try something else?", false
	}
	if len(available) == 0 {
		return "There are no add ons available for this item.", false
	}

	// Skip types the customer already covered when first naming the item.
	var initial []string
	if h.memory.CurrentItem != nil {
		initial = h.memory.CurrentItem.AddOns
	}
	rec := Reconcile(initial, available)

	flow := NewAddOnFlow(GroupByType(available), rec.SelectedTypes)
	for _, sel := range rec.Selected {
		flow.Selections[sel.Type] = append(flow.Selections[sel.Type], sel.Name)
	}
	h.memory.Flow = flow

	current := flow.Current()
	if current == "" {
		return fmt.Sprintf("Got it! I have %s for your order. Anything else?", flow.Summary()), false
	}
	return renderAddonPrompt(fmt.Sprintf("Great! Let's add some %ss to your order:", current), current, flow.Options[current]), false
}

func (h *ToolHandler) handleRecordAddons(raw json.RawMessage) (string, bool) {
	var args RecordAddonsArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return "Sorry, which add-on would you like?", false
	}

	flow := h.memory.Flow
	flow.Record(args.AddonType, args.Selection)
	flow.Advance()

	if !flow.Complete() {
		next := flow.Current()
		return renderAddonPrompt(fmt.Sprintf("Great choice! Now for %ss:", next), next, flow.Options[next]), false
	}
	return fmt.Sprintf("Got it! I've added %s to your order. Anything else?", flow.Summary()), false
}

func (h *ToolHandler) handleCreateOrder(raw json.RawMessage) (string, bool) {
	var args CreateOrderArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return msgOrderTrouble, false
	}

	phone := args.CustomerPhone.String()
	if phone == "" {
		phone = h.memory.CustomerPhone
	}
	if phone == "" {
		phone = h.fromNumber
	}
	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return "Phone number must be exactly 10 digits long. Please try again.", false
	}

	name := args.CustomerName
	if name == "" {
		name = h.memory.CustomerName
	}

	items := NormalizeItems(args.OrderItems)
	if len(items) == 0 {
		return "I didn't find any valid items to order. Could you please list your items again?", false
	}

	lines, err := ResolveLines(h.catalog, items)
	if err != nil {
		log.Printf("conv=%s create_order resolve failed: %v", h.convID, err)
		return msgOrderTrouble, false
	}
	if len(lines) == 0 {
		return "I didn't find any valid items to order. Could you please list your items again?", false
	}

	draft := OrderDraft{
		CustomerName:        name,
		CustomerPhone:       normalized,
		Lines:               lines,
		Total:               OrderTotal(lines),
		SpecialInstructions: CombineInstructions(args.SpecialInstructions, lines),
	}

	var order *entity.Order
	var confirmation string
	if h.memory.OrderID != 0 {
		order, err = h.orders.Update(h.memory.OrderID, draft)
		confirmation = fmt.Sprintf("I've updated your order. Your order number is still #%d.", h.memory.OrderID)
	} else {
		order, err = h.orders.Create(draft)
		if err == nil {
			h.memory.OrderID = order.ID
			confirmation = fmt.Sprintf("Great! I've placed your order. Your order number is #%d.", order.ID)
		}
	}
	if err != nil {
		log.Printf("conv=%s create_order persist failed: %v", h.convID, err)
		return msgOrderTrouble, false
	}

	pickup := "our restaurant"
	if restaurant, err := h.catalog.GetRestaurant(); err == nil && restaurant != nil {
		pickup = restaurant.Address
	}
	confirmation += fmt.Sprintf(" Your total is %s and it should be ready in about %d minutes.",
		formatPrice(order.TotalAmount), order.EstimatedPrepMinutes)
	confirmation += fmt.Sprintf(" You can pick it up at %s.", pickup)
	return confirmation, false
}

func (h *ToolHandler) handleFetchMenuCategories(json.RawMessage) (string, bool) {
	menu, err := h.catalog.GetMenu("")
	if err != nil {
		log.Printf("conv=%s fetch_menu_categories failed: %v", h.convID, err)
		return "I'm having trouble accessing our menu categories right now. Please try again in a moment.", false
	}

	seen := make(map[string]bool)
	var categories []string
	for _, item := range menu {
		c := strings.ToLower(item.Category)
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	sort.Strings(categories)
	if len(categories) == 0 {
		return "Our menu is being updated right now. Please check back soon.", false
	}
	return fmt.Sprintf("We have %s on the menu. Which would you like to hear about?", strings.Join(categories, " and ")), false
}

func (h *ToolHandler) handleFetchItemsForCategory(raw json.RawMessage) (string, bool) {
	var args FetchItemsForCategoryArgs
	if err := json.Unmarshal(raw, &args); err != nil || args.Category == "" {
		return "Which category would you like to hear about?", false
	}

	items, err := h.catalog.GetMenu(args.Category)
	if err != nil {
		log.Printf("conv=%s fetch_items_for_category failed: %v", h.convID, err)
		return "I'm having trouble accessing the menu items for that category. Please try again in a moment.", false
	}
	if len(items) == 0 {
		return fmt.Sprintf("I don't see any items available in the %s category right now.", args.Category), false
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are our %s options:\n", strings.ToLower(args.Category))
	for _, item := range items {
		fmt.Fprintf(&b, "- %s (%s)", item.Name, formatPrice(item.BasePrice))
		if item.Description != "" {
			fmt.Fprintf(&b, ": %s", item.Description)
		}
		b.WriteString("\n")
	}
	b.WriteString("Which one would you like?")
	return b.String(), false
}

func (h *ToolHandler) handleFetchCompleteMenu(json.RawMessage) (string, bool) {
	menu, err := h.catalog.GetMenu("")
	if err != nil {
		log.Printf("conv=%s fetch_complete_menu failed: %v", h.convID, err)
		return "I'm having trouble accessing our menu right now. Please try again in a moment.", false
	}

	byCategory := make(map[string][]entity.MenuItem)
	var order []string
	for _, item := range menu {
		c := strings.ToLower(item.Category)
		if _, ok := byCategory[c]; !ok {
			order = append(order, c)
		}
		byCategory[c] = append(byCategory[c], item)
	}

	var b strings.Builder
	b.WriteString("Here's our current menu:\n")
	for _, c := range order {
		fmt.Fprintf(&b, "\n%s:\n", titleCase(c))
		for _, item := range byCategory[c] {
			fmt.Fprintf(&b, "- %s (%s)\n", item.Name, formatPrice(item.BasePrice))
		}
	}
	return b.String(), false
}

func (h *ToolHandler) handleFetchRestaurantInfo(json.RawMessage) (string, bool) {
	restaurant, err := h.catalog.GetRestaurant()
	if err != nil || restaurant == nil {
		if err != nil {
			log.Printf("conv=%s fetch_restaurant_info failed: %v", h.convID, err)
		}
		return "I'm sorry, I'm having trouble accessing our restaurant information. Is there something else I can help you with?", false
	}

	text := fmt.Sprintf("We are %s, located at %s. Our phone number is %s. We are open %s. Please note that we are a pickup-only restaurant.",
		restaurant.Name, restaurant.Address, restaurant.Phone, restaurant.OpeningHours)
	return text, false
}

func (h *ToolHandler) handleEndCall(raw json.RawMessage) (string, bool) {
	var args EndCallArgs
	if err := json.Unmarshal(raw, &args); err != nil || args.Message == "" {
		return "Thank you for calling. Goodbye!", true
	}
	log.Printf("conv=%s call ended by customer request", h.convID)
	return args.Message, true
}

// renderAddonPrompt lists every option for one add-on type and ends with
// a direct question naming the type.
func renderAddonPrompt(lead, addonType string, options []entity.AddOn) string {
	lines := []string{lead}
	for _, a := range options {
		lines = append(lines, fmt.Sprintf("- %s (%s)", a.Name, addonPriceText(a.Price)))
	}
	lines = append(lines, fmt.Sprintf("Which %s would you like?", addonType))
	return strings.Join(lines, "\n")
}

func addonPriceText(price float64) string {
	if price == 0 {
		return "no extra charge"
	}
	return formatPrice(price)
}

func formatPrice(price float64) string {
	if price < 0 {
		return fmt.Sprintf("-$%.2f", -price)
	}
	return fmt.Sprintf("$%.2f", price)
}
