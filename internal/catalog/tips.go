// ABOUTME: Desk-health tips rotated during workout sessions.
// ABOUTME: Also carries the medical disclaimer shown at onboarding.
package catalog

// MedicalDisclaimer is shown and must be accepted before onboarding
// completes.
const MedicalDisclaimer = `This app is not medical advice. Consult your doctor before starting exercise, especially if you have pre-existing conditions (heart disease, joint issues, diabetes, pregnancy, recent surgery, age 65+). You participate at your own risk. By continuing, you acknowledge that the developers of DeskFlow are not liable for any injuries sustained during use.`

// GeneralTips is the rotating tip pool used by the workout runner.
var GeneralTips = []string{
	"Hydration: Drink water before you feel thirsty. Brain fog is often just dehydration.",
	"20-20-20 Rule: Every 20 mins, look at something 20 feet away for 20 seconds to save your eyes.",
	"Posture Check: Are your ears aligned with your shoulders right now?",
	"Ergonomics: Your monitor top should be at eye level to prevent neck strain.",
	"Breathing: Box breathing (4s in, 4s hold, 4s out) reduces work anxiety instantly.",
	"Cold Exposure: A splash of cold water on your face resets the vagus nerve.",
	"Consistency: 2 mins every hour is better than 1 hour once a day for metabolic health.",
	"Vitamin D: Even 5 minutes of sunlight can reset your circadian rhythm.",
	"Eye Health: Blink! We blink 66% less when looking at screens.",
	"Focus: Multitasking lowers IQ more than losing a night of sleep. Focus on one rep at a time.",
}
