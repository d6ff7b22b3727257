package model

// Column names of the conference management system export.
const (
	ColPaperID           = "Paper ID"
	ColPaperTitle        = "Paper Title"
	ColAbstract          = "Abstract"
	ColCreated           = "Created"
	ColLastModified      = "Last Modified"
	ColPaperAuthors      = "Authors"
	ColAuthorNames       = "Author Names"
	ColAuthorEmails      = "Author Emails"
	ColTrackName         = "Track Name"
	ColPrimarySubject    = "Primary Subject Area"
	ColSecondarySubjects = "Secondary Subject Areas"
	ColConflicts         = "Conflicts"
	ColDomains           = "Domains"
	ColAssigned          = "Assigned"
	ColCompleted         = "Completed"
	ColPercentCompleted  = "% Completed"
	ColBids              = "Bids"
	ColDiscussion        = "Discussion"
	ColStatus            = "Status"
	ColFeedbackRequested = "Requested For Author Feedback"
	ColFeedbackDone      = "Author Feedback Submitted?"
	ColCameraRequested   = "Requested For Camera Ready"
	ColCameraDone        = "Camera Ready Submitted?"
	ColPresentationReq   = "Requested For Presentation"
	ColFiles             = "Files"
	ColFilesNum          = "Number of Files"
	ColSupplFiles        = "Supplementary Files"
	ColSupplFilesNum     = "Number of Supplementary Files"
	ColReviewers         = "Reviewers"
	ColReviewerEmails    = "Reviewer Emails"
	ColMetaReviewers     = "MetaReviewers"
	ColMetaReviewerEmail = "MetaReviewer Emails"
	ColSeniorMeta        = "SeniorMetaReviewers"
	ColSeniorMetaEmails  = "SeniorMetaReviewerEmails"
	ColQ1                = "Q1 (Conflict of Interest)"
	ColQ2                = "Q2 (Originality)"
	ColQ3                = "Q3 (Dual Submission)"
	ColChairNote         = "Chair Note"
	ColReviewNote        = "Review Note"
	ColWithdrawn         = "Withdrawn"
)

// Columns lists the known columns in their export order.
var Columns = []string{
	ColPaperID, ColCreated, ColLastModified, ColPaperTitle, ColAbstract,
	ColPaperAuthors, ColAuthorNames, ColAuthorEmails, ColTrackName,
	ColPrimarySubject, ColSecondarySubjects, ColConflicts, ColDomains,
	ColAssigned, ColCompleted, ColPercentCompleted, ColBids, ColDiscussion,
	ColStatus, ColFeedbackRequested, ColFeedbackDone, ColCameraRequested,
	ColCameraDone, ColPresentationReq, ColFiles, ColFilesNum, ColSupplFiles,
	ColSupplFilesNum, ColReviewers, ColReviewerEmails, ColMetaReviewers,
	ColMetaReviewerEmail, ColSeniorMeta, ColSeniorMetaEmails, ColQ1, ColQ2,
	ColQ3, ColChairNote, ColReviewNote, ColWithdrawn,
}
