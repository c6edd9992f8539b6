// Package prompts contains all tool description strings exposed to the
// calling agent.
package prompts

// Notebook tool descriptions
const (
	// ListNotebooksToolDoc is the description for the list_notebooks tool
	ListNotebooksToolDoc = `Lists the notebooks owned by the configured Kaggle account.

Returns a JSON array of records, one per notebook, keyed by the column headers of the Kaggle CLI listing (typically ref, title, author, lastRunTime, totalVotes). Values are raw strings exactly as printed by the CLI.

Usage notes:
- page and page_size are accepted for forward compatibility but are not currently forwarded; the listing always returns the CLI's default page.
- An account with no notebooks yields an empty array, not an error.`

	// GetNotebookToolDoc is the description for the get_notebook tool
	GetNotebookToolDoc = `Downloads a notebook from Kaggle and returns its full .ipynb content as text.

The notebook_ref argument is the "owner/slug" identifier shown in list_notebooks. The notebook is pulled into a temporary directory, its .ipynb file is read verbatim, and the directory is removed before returning. The notebook's internal JSON structure is not transformed.`

	// UpdateNotebookToolDoc is the description for the update_notebook tool
	UpdateNotebookToolDoc = `Pushes a local notebook file to Kaggle.

Both notebook_ref and file_path are required. Note that the push targets whatever notebook is named by the metadata embedded alongside file_path; notebook_ref is used for confirmation text only. Keep the embedded metadata consistent with notebook_ref.`

	// RunNotebookToolDoc is the description for the run_notebook tool
	RunNotebookToolDoc = `Triggers a run of a notebook on Kaggle.

The notebook_ref argument is the "owner/slug" identifier. Returns whatever output the CLI produced, or a confirmation that the run was started. The CLI may return before the remote run completes; success means the run was accepted, not that it finished.`
)
