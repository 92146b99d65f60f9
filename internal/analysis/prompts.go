package analysis

import (
	"fmt"
	"strings"
)

// Prompt templates for the three generation-backed stages. Keep updates
// centralized here so they are easy to tweak without hunting through call
// sites. The stage contract depends only on the response shape each prompt
// requests, not on the wording.

const summarySystemPrompt = `You are an expert meeting analyst. Your task is to create a concise,
high-level summary of a meeting transcript.

Focus on:
1. The main purpose and objectives of the meeting
2. Key topics discussed
3. Important points raised by participants
4. Overall outcome or conclusion

Guidelines:
- Be concise but comprehensive
- Use bullet points for key topics
- Mention participant names when relevant
- Keep the summary to 3-5 paragraphs maximum
- Identify 3-7 key topics discussed

Output format:
## Summary
[Your concise summary paragraph]

## Key Topics
- Topic 1
- Topic 2
- Topic 3`

const decisionsSystemPromptTemplate = `You are an expert at analyzing meeting transcripts to identify
key decisions and agreements made during discussions.

Your task is to extract:
1. Final decisions that were made
2. Agreements reached between participants
3. Key pivots or direction changes
4. Approvals or rejections of proposals

Output your findings as a JSON array with this structure:
[
    {
        "decision": "Description of the decision",
        "made_by": "Person who made/announced it or null",
        "context": "Brief context or reasoning",
        "related_discussion": "Related discussion points"
    }
]

Guidelines:
- Only include actual decisions, not proposals or suggestions
- Be specific and factual
- If no clear decisions were made, return an empty array []
- Maximum %d decisions per meeting`

const actionItemsSystemPromptTemplate = `You are an expert at analyzing meeting transcripts to identify
action items, tasks, and assignments.

Your task is to extract:
1. Tasks that were assigned to specific people
2. Follow-up actions mentioned
3. Commitments made by participants
4. Deadlines or timelines mentioned

Output your findings as a JSON array with this structure:
[
    {
        "task": "Description of the task",
        "owner": "Person responsible or null",
        "deadline": "Deadline if mentioned or null",
        "priority": "high/medium/low or null",
        "context": "Brief context from discussion"
    }
]

Guidelines:
- Be specific about what needs to be done
- Use exact participant names as owners
- Only include items that are clearly tasks, not suggestions
- Infer priority from language (ASAP = high, "when you can" = low)
- If no clear action items, return an empty array []
- Maximum %d action items per meeting`

const transcriptUserPromptTemplate = `Analyze the following meeting transcript.

Meeting Title: %s
Participants: %s

--- TRANSCRIPT ---
%s
--- END TRANSCRIPT ---

%s`

func decisionsSystemPrompt(maxDecisions int) string {
	return fmt.Sprintf(decisionsSystemPromptTemplate, maxDecisions)
}

func actionItemsSystemPrompt(maxActionItems int) string {
	return fmt.Sprintf(actionItemsSystemPromptTemplate, maxActionItems)
}

func transcriptUserPrompt(state State, charLimit int, instruction string) string {
	return fmt.Sprintf(
		transcriptUserPromptTemplate,
		strings.TrimSpace(state.MeetingTitle),
		state.ParticipantsLabel(),
		truncateRunes(state.Transcript(), charLimit),
		instruction,
	)
}
