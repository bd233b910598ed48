package chatbot

import "math/rand"

// prompts.go collects every canned message the engine emits, so the
// conversational copy can be tweaked without touching the state logic.

var greetings = []string{
	"Hello! I'm your AI medical assistant. I'll help you identify potential health issues based on your symptoms. 🏥",
	"Hi there! Welcome to the Smart Hospital AI assistant. Let's discuss your symptoms together. 👋",
	"Greetings! I'm here to help analyze your symptoms. Let's get started! 🤖",
}

func randomGreeting() string {
	return greetings[rand.Intn(len(greetings))]
}

const (
	msgAskPatientInfo = "\n\nTo begin, I'd like to know a few basic details about you. " +
		"May I have your name, age, and gender? (e.g., 'John, 35, Male')"

	msgPatientInfoRetry = "I couldn't quite understand that. Could you please provide your information in this format: " +
		"'Name, Age, Gender' (e.g., 'Sarah, 28, Female')"

	msgAskPrimarySymptom = "Now, let's talk about your symptoms. What is your main concern today? " +
		"What symptom is bothering you the most?"

	msgPrimarySymptomRetry = "I didn't catch specific symptoms from that. Could you describe what you're feeling? " +
		"For example: 'I have a headache and feel very tired' or 'I'm coughing with a sore throat'."

	msgFirstFollowUp = "Let me ask a few follow-up questions to better understand your condition. " +
		"Do you have any fever? (Yes/No)"

	msgHistoryIntro = "Thank you for providing that information.\n\n" +
		"Now, a few questions about your medical history:\n" +
		"Do you have diabetes? (Yes/No)"

	msgAskHypertension = "Do you have hypertension (high blood pressure)? (Yes/No)"
	msgAskSmoker       = "Are you a smoker? (Yes/No)"

	msgVitalsOffer = "Great! That's all the questions I need.\n\n" +
		"Would you like to provide vital signs (temperature, oxygen saturation, etc.) for a more accurate prediction? " +
		"(Yes/No)\n\n" +
		"You can say 'No' to skip this and get a prediction now."

	msgVitalsPrompt = "Great! Let me collect your vital signs. What is your current temperature in Celsius? (e.g., 37.5)"

	msgFarewell = "Goodbye! Feel free to return if you need medical assistance. Take care! 👋"

	msgScheduleGuidance = "Great! To schedule an appointment, please visit our Appointments page from the main menu. \n\n" +
		"Our medical staff will be happy to assist you. Would you like to start a new consultation? (Type 'restart')"

	msgCompletedFarewell = "Okay! Feel free to come back anytime if you need assistance. Take care! 👋\n\n" +
		"Type 'restart' to begin a new consultation."

	msgLost = "I'm not sure how to respond. Type 'restart' to begin again."

	msgPredictionEmpty = "I'm sorry, I couldn't generate a prediction. Please try again or consult with a healthcare provider."

	msgPredictionError = "An error occurred while processing your information. Please try again or contact support."

	msgRecordWarning = "⚠️ Note: I couldn't save this consultation to your patient record. The prediction above is still valid."

	msgDisclaimer = "\n\n⚠️ **Important Medical Disclaimer:**\n" +
		"This AI tool provides preliminary predictions only and should NOT replace professional medical advice. " +
		"Always consult with a qualified healthcare provider for proper diagnosis and treatment."

	msgNextSteps = "\n\n💡 **Next Steps:**\n" +
		"1. Consult with a healthcare provider for proper diagnosis\n" +
		"2. Monitor your symptoms and seek immediate care if they worsen\n" +
		"3. Stay hydrated and get plenty of rest\n"

	// quick-mode copy, terser on purpose
	msgQuickIntro = "Hi! I'm your AI medical assistant. 🤖\n\nProvide: Name, Age, Gender\nExample: 'John, 35, Male'"

	msgQuickInfoRetry = "Please use format: 'Name, Age, Gender'"

	msgQuickSymptomHint = "Describe symptoms like: 'fever and headache' or type 'predict'"

	msgQuickNoSymptoms = "Please describe symptoms first."

	msgQuickCompleted = "Type 'restart' for new consultation."

	msgQuickFooter = "\n⚠️ **Consult a healthcare provider for proper diagnosis**\nType 'restart' for new consultation."
)
