package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	authdomain "todo-tracker/internal/auth/domain"
	authUsecase "todo-tracker/internal/auth/usecase"
	taskdomain "todo-tracker/internal/task/domain"
	taskRepo "todo-tracker/internal/task/repository"
	taskUsecase "todo-tracker/internal/task/usecase"
)

// CLI is the interactive console surface over the account and task
// usecases. All prompting, defaulting and display formatting lives here;
// the usecases only see parsed values.
type CLI struct {
	auth  authUsecase.AuthUsecase
	tasks taskUsecase.TaskUsecase
	in    *bufio.Reader
	out   io.Writer
	now   func() time.Time
	eof   bool
}

// New creates a CLI reading from stdin and writing to stdout
func New(auth authUsecase.AuthUsecase, tasks taskUsecase.TaskUsecase) *CLI {
	return &CLI{
		auth:  auth,
		tasks: tasks,
		in:    bufio.NewReader(os.Stdin),
		out:   os.Stdout,
		now:   time.Now,
	}
}

// Run drives the start menu until the user exits
func (c *CLI) Run() {
	fmt.Fprintln(c.out, "=== To-Do List ===")
	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "1. Register")
		fmt.Fprintln(c.out, "2. Login")
		fmt.Fprintln(c.out, "3. Exit")

		choice := c.readLine("> ")
		if c.eof {
			return
		}
		switch choice {
		case "1":
			c.register()
		case "2":
			if user := c.login(); user != nil {
				c.session(user)
			}
		case "3":
			return
		default:
			fmt.Fprintln(c.out, "Unknown option.")
		}
	}
}

func (c *CLI) register() {
	username := c.readLine("Username: ")
	password := c.readPassword("Password: ")

	id, err := c.auth.Register(username, password)
	if err != nil {
		fmt.Fprintf(c.out, "Registration failed: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Account created (id %d). You can log in now.\n", id)
}

func (c *CLI) login() *authdomain.User {
	username := c.readLine("Username: ")

	// Distinct messaging for unknown user vs wrong password is owned here;
	// the usecase itself does not distinguish the two.
	known, err := c.auth.Exists(username)
	if err != nil {
		fmt.Fprintf(c.out, "Login failed: %v\n", err)
		return nil
	}
	if !known {
		fmt.Fprintln(c.out, "No such user.")
		return nil
	}

	password := c.readPassword("Password: ")
	user, err := c.auth.Login(username, password)
	if err != nil {
		if errors.Is(err, authUsecase.ErrInvalidCredentials) {
			fmt.Fprintln(c.out, "Wrong password.")
		} else {
			fmt.Fprintf(c.out, "Login failed: %v\n", err)
		}
		return nil
	}

	fmt.Fprintf(c.out, "Welcome, %s!\n", user.Username)
	return user
}

func (c *CLI) session(user *authdomain.User) {
	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "1. Add task")
		fmt.Fprintln(c.out, "2. View all tasks")
		fmt.Fprintln(c.out, "3. View pending tasks")
		fmt.Fprintln(c.out, "4. View completed tasks")
		fmt.Fprintln(c.out, "5. View overdue tasks")
		fmt.Fprintln(c.out, "6. View tasks due today")
		fmt.Fprintln(c.out, "7. View upcoming tasks")
		fmt.Fprintln(c.out, "8. Update task")
		fmt.Fprintln(c.out, "9. Complete task")
		fmt.Fprintln(c.out, "10. Delete task")
		fmt.Fprintln(c.out, "0. Logout")

		choice := c.readLine("> ")
		if c.eof {
			return
		}
		switch choice {
		case "1":
			c.addTask(user.ID)
		case "2":
			c.list(c.tasks.ListAll(user.ID))
		case "3":
			c.list(c.tasks.ListPending(user.ID))
		case "4":
			c.list(c.tasks.ListCompleted(user.ID))
		case "5":
			c.list(c.tasks.ListOverdue(user.ID, c.now()))
		case "6":
			c.list(c.tasks.ListDueToday(user.ID, c.now()))
		case "7":
			c.list(c.tasks.ListUpcoming(user.ID, c.now()))
		case "8":
			c.updateTask(user.ID)
		case "9":
			c.completeTask(user.ID)
		case "10":
			c.deleteTask(user.ID)
		case "0":
			return
		default:
			fmt.Fprintln(c.out, "Unknown option.")
		}
	}
}

func (c *CLI) addTask(ownerID uint) {
	description := c.readLine("Description: ")
	dueDate := c.readDueDate()
	dueTime := c.readDueTime()
	priority := c.readPriority()

	task, err := c.tasks.CreateTask(ownerID, description, dueDate, dueTime, priority)
	if err != nil {
		fmt.Fprintf(c.out, "Could not add task: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Task %d added.\n", task.ID)
}

func (c *CLI) updateTask(actorID uint) {
	taskID := c.readUint("Task id: ")
	description := c.readLine("New description: ")
	dueDate := c.readDueDate()
	dueTime := c.readDueTime()
	priority := c.readPriority()

	if err := c.tasks.UpdateTask(actorID, taskID, description, dueDate, dueTime, priority); err != nil {
		c.reportMutationError(err)
		return
	}
	fmt.Fprintln(c.out, "Task updated (status reset to Pending).")
}

func (c *CLI) completeTask(actorID uint) {
	taskID := c.readUint("Task id: ")
	if err := c.tasks.CompleteTask(actorID, taskID); err != nil {
		c.reportMutationError(err)
		return
	}
	fmt.Fprintln(c.out, "Task completed.")
}

func (c *CLI) deleteTask(actorID uint) {
	taskID := c.readUint("Task id: ")
	if err := c.tasks.DeleteTask(actorID, taskID); err != nil {
		c.reportMutationError(err)
		return
	}
	fmt.Fprintln(c.out, "Task deleted.")
}

func (c *CLI) reportMutationError(err error) {
	switch {
	case errors.Is(err, taskRepo.ErrTaskNotFound):
		fmt.Fprintln(c.out, "No task with that id.")
	case errors.Is(err, taskUsecase.ErrNotOwner):
		fmt.Fprintln(c.out, "That task belongs to another account.")
	default:
		fmt.Fprintf(c.out, "Operation failed: %v\n", err)
	}
}

func (c *CLI) list(tasks []*taskdomain.Task, err error) {
	if err != nil {
		fmt.Fprintf(c.out, "Could not list tasks: %v\n", err)
		return
	}
	if len(tasks) == 0 {
		fmt.Fprintln(c.out, "No tasks.")
		return
	}
	fmt.Fprintf(c.out, "%-5s %-30s %-12s %-7s %-9s %s\n",
		"ID", "Description", "Due date", "Time", "Priority", "Status")
	for _, t := range tasks {
		fmt.Fprintf(c.out, "%-5d %-30s %-12s %-7s %-9d %s\n",
			t.ID, t.Description, t.DueDate, t.DueTime, t.Priority, t.Status)
	}
}
