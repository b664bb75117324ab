package kernel

type EmployeeID string

func NewEmployeeID(id string) EmployeeID { return EmployeeID(id) }
func (e EmployeeID) String() string      { return string(e) }
func (e EmployeeID) IsEmpty() bool       { return string(e) == "" }

type DocumentID string

func NewDocumentID(id string) DocumentID { return DocumentID(id) }
func (d DocumentID) String() string      { return string(d) }
func (d DocumentID) IsEmpty() bool       { return string(d) == "" }

type TaskID string

func NewTaskID(id string) TaskID { return TaskID(id) }
func (t TaskID) String() string  { return string(t) }
func (t TaskID) IsEmpty() bool   { return string(t) == "" }
