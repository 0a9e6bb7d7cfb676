package handlers

// User-facing message texts
const (
	MsgWelcome = "👋 Welcome!\nPlay the mini quiz to win a prize.\n\nYou'll get a notification here when a game starts."

	MsgQuestion   = "❓ Question %d\n%s"
	MsgQuizResult = "🏁 You answered %d questions out of five correctly!"

	MsgGameNotRunning = "⏳ No game is running right now. Wait for the announcement!"
	MsgNoQuestions    = "❌ The quiz isn't set up yet. Try again later!"
	MsgNoSession      = "🤔 You don't have an active game. Send /game when a round is on!"

	MsgAdminGranted = "✅ You're an admin now!"
	MsgAdminDenied  = "⛔️ Nice try!"
	MsgAdminsOnly   = "⛔️ Only admins can use this command!"

	MsgStopGameFirst  = "⚠️ Stop the game first!"
	MsgAskQuestion    = "✍️ Send question %d like this:\nquestion-answer1-answer2-answer3-answer4-correct answer"
	MsgBadQuestion    = "❌ That doesn't look right. Six fields, separated by hyphens, and the correct answer must match one of the four options."
	MsgQuestionsSaved = "✅ All five questions saved!"

	MsgGameOn  = "🟢 Game is ON. Players can start with /game!"
	MsgGameOff = "🔴 Game is OFF."

	MsgGenericError = "❌ Something went wrong, please try again!"
)
