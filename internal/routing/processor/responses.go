package processor

import (
	"fmt"

	"echoaid-server/internal/store"
)

// Response text assembly for each routing branch. Counts of matched
// reference data are folded into fixed template fragments.

func generateEmploymentResponse(schemes []store.WelfareScheme, providers []store.ServiceProvider) string {
	response := "I understand you're looking for employment opportunities. "

	if len(schemes) > 0 {
		response += fmt.Sprintf("There are %d government schemes that might help you. ", len(schemes))
	}
	if len(providers) > 0 {
		response += fmt.Sprintf("I've also found %d organizations nearby that provide job placement services. ", len(providers))
	}

	response += "Would you like me to connect you with someone who can help, or would you prefer to hear about specific programs first?"
	return response
}

func generateShelterResponse(providers []store.ServiceProvider, isUrgent bool) string {
	if isUrgent {
		return "I understand you need shelter urgently. Let me immediately connect you with the nearest shelter that has availability. Please stay on the line."
	}

	response := "I can help you find shelter options. "
	if len(providers) > 0 {
		response += fmt.Sprintf("There are %d shelters and housing services in your area. ", len(providers))
	}
	response += "Would you like me to check availability and connect you with the nearest one?"
	return response
}

func generateEmergencyResponse() string {
	return "This sounds like an emergency situation. I'm going to connect you immediately with the appropriate helpline. Please stay on the line while I transfer your call."
}

func routeFoodAssistance() RoutingResult {
	return RoutingResult{
		Success:  true,
		Intent:   IntentFood,
		Response: "I can help you find food assistance programs in your area.",
		Actions:  []string{"provide_food_centers", "connect_to_provider"},
	}
}

func routeHealthcare() RoutingResult {
	return RoutingResult{
		Success:  true,
		Intent:   IntentHealthcare,
		Response: "I can help you access healthcare services and medical assistance.",
		Actions:  []string{"provide_health_centers", "connect_to_provider"},
	}
}

func routeLegalAid() RoutingResult {
	return RoutingResult{
		Success:  true,
		Intent:   IntentLegalAid,
		Response: "I can connect you with legal aid services and assistance.",
		Actions:  []string{"provide_legal_contacts", "connect_to_lawyer"},
	}
}

func routeGeneralHelp() RoutingResult {
	return RoutingResult{
		Success:  true,
		Intent:   IntentGeneral,
		Response: "I'm here to help you access various social services. Can you tell me more about what you need?",
		Actions:  []string{"ask_for_clarification", "provide_menu"},
	}
}
